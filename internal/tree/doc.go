// Package tree materializes a generated project on disk.
//
// Regenerating into an existing tree is a full overwrite: the include,
// source, and build directories are removed and recreated, and the manifest
// is replaced. Other files under the root are left alone.
//
// Unit files are independent of each other, so they are written in parallel
// by a bounded worker group. The first failure cancels outstanding writes; a
// partially written tree is an accepted outcome and is repaired by running
// the generator again. The manifest is written only after every unit file.
package tree
