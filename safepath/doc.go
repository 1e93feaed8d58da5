// Package safepath hardens untrusted names before they touch the
// filesystem.
//
// SanitizeFilename reduces arbitrary input to a single safe path
// component, and Join keeps relative fragments inside a base directory:
//
//	name, err := safepath.SanitizeFilename(upload.Filename)
//	if err != nil {
//		return err
//	}
//	dst, err := safepath.Join(uploadDir, name)
//	if err != nil {
//		return err
//	}
//
// Sanitization strips directory components, substitutes unsafe
// characters, defuses Windows reserved device names, and caps the result
// at 255 bytes, so the output is usable on the common filesystems.
package safepath
