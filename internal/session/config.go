package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	shellwords "github.com/mattn/go-shellwords"
)

// ConfigFileName is the name of the optional configuration file inside the
// parent directory.
const ConfigFileName = "dsconfig.json"

// configFile is the JSON representation of dsconfig.json.
//
//	{
//	  "windowName": "work",
//	  "ignoredDirs": ["node_modules"],
//	  "dirs": [
//	    {"dirName": "api", "dispName": "API", "onOpen": "make run"}
//	  ]
//	}
type configFile struct {
	WindowName  string      `json:"windowName"`
	IgnoredDirs []string    `json:"ignoredDirs"`
	Dirs        []dirConfig `json:"dirs"` // nil if absent or null

	// Older spelling of windowName.
	WinName string `json:"winName"`
}

type dirConfig struct {
	DispName string `json:"dispName"`
	DirName  string `json:"dirName"`
	OnOpen   string `json:"onOpen"`

	// Alternative spelling of dispName.
	DisplayName string `json:"displayName"`
}

// readConfig reads the configuration file at path.
// It returns nil if there is no regular file at path.
func readConfig(path string) (*configFile, error) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, nil
	case err != nil:
		return nil, &ConfigError{Path: path, Err: err}
	case !info.Mode().IsRegular():
		return nil, nil
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	var cfg configFile
	if err := json.Unmarshal(body, &cfg); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	return &cfg, nil
}

func (c *configFile) windowName() string {
	if len(c.WindowName) > 0 {
		return c.WindowName
	}
	return c.WinName
}

func (c *configFile) descriptors() []Descriptor {
	descs := make([]Descriptor, len(c.Dirs))
	for i, d := range c.Dirs {
		name := d.DispName
		if len(name) == 0 {
			name = d.DisplayName
		}
		descs[i] = Descriptor{
			DirName:     d.DirName,
			DisplayName: name,
			OnOpen:      d.OnOpen,
		}
	}
	return descs
}

// CheckCommand reports whether cmd splits cleanly into words with balanced
// quotes and escapes. Commands may be chained with operators like "&&" or
// ";".
//
// A failure here does not mean the shell will reject cmd: subshells,
// arithmetic expansion, and function bodies are valid shell but don't
// split into words.
func CheckCommand(cmd string) error {
	p := shellwords.NewParser()
	rest := []rune(cmd)
	for len(rest) > 0 {
		if _, err := p.Parse(string(rest)); err != nil {
			return err
		}

		// Position is the rune offset of the operator that stopped
		// the parser, or -1 if the whole string was consumed.
		if p.Position < 0 || p.Position >= len(rest) {
			break
		}
		rest = rest[p.Position+1:]
	}
	return nil
}
