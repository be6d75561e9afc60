package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// readSecrets loads a flat key/value secrets file. TOML is the default;
// .yaml/.yml files are read as YAML. A missing file yields no secrets.
func readSecrets(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read secrets file: %w", err)
	}

	decoded := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &decoded)
	default:
		err = toml.Unmarshal(raw, &decoded)
	}
	if err != nil {
		return nil, fmt.Errorf("parse secrets file %s: %w", path, err)
	}

	secrets := make(map[string]string, len(decoded))
	for key, value := range decoded {
		switch v := value.(type) {
		case string:
			secrets[key] = v
		case map[string]any:
			// nested tables are not settings
		default:
			secrets[key] = fmt.Sprint(v)
		}
	}
	return secrets, nil
}
