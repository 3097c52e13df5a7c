package config

// File is the whole config file. Every section is optional and a
// tool only looks at its own. Pointers mark values that can be
// legitimately zero or false.
type File struct {
	Log       YAMLLog       `yaml:"log"`
	PDB2Fasta YAMLPDB2Fasta `yaml:"pdb2fasta"`
	Extract   YAMLExtract   `yaml:"extract"`
	Multimer  YAMLMultimer  `yaml:"multimer"`
}

type YAMLLog struct {
	Debug *bool  `yaml:"debug"`
	Quiet *bool  `yaml:"quiet"`
	Path  string `yaml:"path"`
}

type YAMLPDB2Fasta struct {
	Dir        string `yaml:"dir"`
	Chain      string `yaml:"chain"`
	Combined   string `yaml:"combined"`
	Individual *bool  `yaml:"individual"`
}

type YAMLExtract struct {
	Input       string `yaml:"input"`
	Output      string `yaml:"output"`
	Composition string `yaml:"composition"`
	NFlank      string `yaml:"n_flank"`
	CFlank      string `yaml:"c_flank"`
	Keep        *int   `yaml:"keep"`
}

type YAMLMultimer struct {
	Input      string `yaml:"input"`
	Partner    string `yaml:"partner"`
	OutDir     string `yaml:"output_dir"`
	Combined   string `yaml:"combined_output"`
	Individual *bool  `yaml:"create_individual_files"`
	CombinedOn *bool  `yaml:"create_combined_file"`
	Order      string `yaml:"sequence_order"`
	Naming     string `yaml:"naming_format"`
}
