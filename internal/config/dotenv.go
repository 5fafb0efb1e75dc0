package config

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// loadDotEnv copies entries from the nearest .env into the process
// environment. DOTENV_FILE points at an explicit file instead of searching.
func loadDotEnv() {
	path := os.Getenv("DOTENV_FILE")
	if path == "" {
		var ok bool
		if path, ok = findDotEnvPath(); !ok {
			return
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	entries, err := parseDotEnv(file)
	if err != nil {
		return
	}
	for key, value := range entries {
		// 进程环境变量优先于 .env
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		_ = os.Setenv(key, value)
	}
}

// findDotEnvPath walks up from the working directory and stops at the
// first directory that looks like a project root.
func findDotEnvPath() (string, bool) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", false
	}

	for dir := cwd; ; {
		path := filepath.Join(dir, ".env")
		if isRegularFile(path) {
			return path, true
		}
		if isRegularFile(filepath.Join(dir, "go.mod")) || isDir(filepath.Join(dir, ".git")) {
			return "", false
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func parseDotEnv(r io.Reader) (map[string]string, error) {
	entries := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if key, value, ok := parseDotEnvLine(scanner.Text()); ok {
			entries[key] = value
		}
	}
	return entries, scanner.Err()
}

func parseDotEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimPrefix(line, "export ")

	key, raw, found := strings.Cut(line, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return "", "", false
	}

	raw = strings.TrimSpace(raw)
	if n := len(raw); n >= 2 && (raw[0] == '\'' || raw[0] == '"') && raw[n-1] == raw[0] {
		return key, raw[1 : n-1], true
	}
	return key, stripInlineComment(raw), true
}

// stripInlineComment drops a '#' comment that follows whitespace.
func stripInlineComment(value string) string {
	for i := 0; i < len(value); i++ {
		if value[i] == '#' && (i == 0 || value[i-1] == ' ' || value[i-1] == '\t') {
			return strings.TrimSpace(value[:i])
		}
	}
	return value
}

func isRegularFile(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.Mode().IsRegular()
}

func isDir(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.IsDir()
}
