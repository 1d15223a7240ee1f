package ir

import (
	"fmt"
	"path"
	"path/filepath"
)

// Layout names the directories and files of a generated tree. Root is a
// filesystem path; every other field is relative to Root and uses forward
// slashes in the manifest.
type Layout struct {
	Root       string `json:"root"`
	IncludeDir string `json:"include_dir"`
	SourceDir  string `json:"source_dir"`
	BuildDir   string `json:"build_dir"`
	Manifest   string `json:"manifest"`
	Output     string `json:"output"`
}

// EntryFile is the file name of the entry unit inside the source directory.
const EntryFile = "main.cpp"

// HeaderFile returns the file name of header i.
func HeaderFile(i int) string {
	return fmt.Sprintf("header_%d.hpp", i)
}

// SourceFile returns the file name of source unit j.
func SourceFile(j int) string {
	return fmt.Sprintf("source_%d.cpp", j)
}

// SourcePath is the manifest path of a source file, relative to Root.
func (l Layout) SourcePath(file string) string {
	return path.Join(l.SourceDir, file)
}

// ArtifactPath is the manifest path of the object produced from a source file.
func (l Layout) ArtifactPath(file string) string {
	return path.Join(l.BuildDir, file+".o")
}

// OutputPath is the manifest path of the final linked binary.
func (l Layout) OutputPath() string {
	return path.Join(l.BuildDir, l.Output)
}

// IncludeRoot is the on-disk header directory.
func (l Layout) IncludeRoot() string {
	return filepath.Join(l.Root, filepath.FromSlash(l.IncludeDir))
}

// SourceRoot is the on-disk source directory.
func (l Layout) SourceRoot() string {
	return filepath.Join(l.Root, filepath.FromSlash(l.SourceDir))
}

// BuildRoot is the on-disk build output directory.
func (l Layout) BuildRoot() string {
	return filepath.Join(l.Root, filepath.FromSlash(l.BuildDir))
}

// ManifestPath is the on-disk manifest file.
func (l Layout) ManifestPath() string {
	return filepath.Join(l.Root, filepath.FromSlash(l.Manifest))
}
