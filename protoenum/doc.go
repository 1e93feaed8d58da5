// Package protoenum bridges protobuf enum descriptors into fuzzy
// enumerations, so wire-level enum values can be resolved from the loose
// spellings found in configuration files and CLI flags.
//
// # Building a set
//
// Any generated enum value exposes its descriptor, which is all Set needs:
//
//	set, err := protoenum.Set(pb.ScanType(0).Descriptor())
//	if err != nil {
//		return err
//	}
//	v, err := set.Parse("SCAN_TYPE_SYN") // or "scan-type-syn", or "1"
//
// The resulting set is a regular enum.IntSet keyed by
// protoreflect.EnumNumber: names, numeric literals, and separator-folded
// spellings all resolve, and alias names from allow_alias enums resolve to
// their shared number.
//
// # Prefix trimming
//
// Proto style prefixes every value name with the SCREAMING_SNAKE enum
// name. WithPrefixTrimming adds the bare suffixes as aliases:
//
//	set := protoenum.MustSet(pb.ScanType(0).Descriptor(),
//		protoenum.WithPrefixTrimming())
//	v, _ := set.Parse("syn") // SCAN_TYPE_SYN
package protoenum
