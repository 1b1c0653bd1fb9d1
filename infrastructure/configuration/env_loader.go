package configuration

import (
	"bufio"
	"os"
	"strings"
)

// LoadEnvFromFile loads KEY=VALUE pairs from one or more files (e.g. .env,
// secrets.env) into the process environment. Missing files are skipped.
// Already-set variables are never overridden, so the OS environment keeps
// precedence over files.
func LoadEnvFromFile(paths ...string) {
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			continue
		}
		applyEnvLines(f)
		_ = f.Close()
	}
}

func applyEnvLines(f *os.File) {
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		idx := strings.Index(line, "=")
		if idx <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		val := strings.Trim(strings.TrimSpace(line[idx+1:]), "\"'")
		if _, exists := os.LookupEnv(key); !exists {
			_ = os.Setenv(key, val)
		}
	}
}
