package models

// GeneratedFile represents a single emitted source file
type GeneratedFile struct {
	FlowName    string // flow this file belongs to
	PackageName string // package declaration of the file
	FilePath    string // path where the file should be written
	Content     string // generated Go source
}

// FlowOutput pairs the two files generated for one flow: the base screen and
// the flow's dependency-provider module.
type FlowOutput struct {
	Flow       *FlowMetadata
	ScreenFile *GeneratedFile
	ModuleFile *GeneratedFile
}

// Files returns the generated files in emission order.
func (o *FlowOutput) Files() []*GeneratedFile {
	var files []*GeneratedFile
	if o.ScreenFile != nil {
		files = append(files, o.ScreenFile)
	}
	if o.ModuleFile != nil {
		files = append(files, o.ModuleFile)
	}
	return files
}
