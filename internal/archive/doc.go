// Package archive packages collection directories into zip files for upload.
//
// Archives are disposable artifacts: one zip per collection, rebuilt fresh
// before every upload and removed unconditionally afterwards. A pre-existing
// zip of the same name is overwritten, never appended to.
package archive
