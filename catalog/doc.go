// Package catalog loads enumeration declarations from YAML documents and
// builds them into immutable enum sets.
//
// A catalog document declares named enumerations, each with a kind, an
// ordered member list, and optional aliases and default:
//
//	enums:
//	  - name: Color
//	    kind: string
//	    members:
//	      - name: RED
//	        value: red
//	      - name: DARK_BLUE
//	        value: dark_blue
//	    aliases:
//	      crimson: red
//	  - name: ErrorCode
//	    kind: int
//	    default: 200
//	    members:
//	      - name: OK
//	        value: 200
//	      - name: NOT_FOUND
//	        value: 404
//	    aliases:
//	      missing: 404
//	      "410": 404
//
// Alias keys are YAML mapping keys and must be strings; quote keys that
// look numeric, as in "410" above.
//
// Load a document and resolve input through the built sets:
//
//	cat, err := catalog.Load("testdata/enums.yaml")
//	if err != nil {
//	    return err
//	}
//	codes, err := cat.Int("ErrorCode")
//	if err != nil {
//	    return err
//	}
//	code, err := codes.Parse("missing") // 404
//
// Declarations are validated while the catalog is built: a document with a
// duplicate name, a wrong-kind value, or any enum definition error (see
// *enum.DefinitionError) yields no Catalog. Built sets are as immutable as
// sets declared in code; loading never makes an enumeration extensible at
// runtime.
package catalog
