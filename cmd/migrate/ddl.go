package main

import (
	"fmt"
	"regexp"
	"strings"
)

// databasePath is a parsed projects/{p}/instances/{i}/databases/{d} name.
type databasePath struct {
	Project  string
	Instance string
	Database string
}

func parseDatabasePath(path string) (databasePath, error) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 6 || parts[0] != "projects" || parts[2] != "instances" || parts[4] != "databases" {
		return databasePath{}, fmt.Errorf("expected projects/{project}/instances/{instance}/databases/{database}, got %q", path)
	}
	for _, p := range []string{parts[1], parts[3], parts[5]} {
		if p == "" {
			return databasePath{}, fmt.Errorf("empty segment in %q", path)
		}
	}
	return databasePath{Project: parts[1], Instance: parts[3], Database: parts[5]}, nil
}

func (d databasePath) instanceName() string {
	return fmt.Sprintf("projects/%s/instances/%s", d.Project, d.Instance)
}

func (d databasePath) String() string {
	return fmt.Sprintf("%s/databases/%s", d.instanceName(), d.Database)
}

func splitDDLStatements(content string) []string {
	var cleaned []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		cleaned = append(cleaned, line)
	}

	var result []string
	for _, stmt := range strings.Split(strings.Join(cleaned, "\n"), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			result = append(result, stmt)
		}
	}
	return result
}

var createObject = regexp.MustCompile(`(?i)^CREATE\s+(?:UNIQUE\s+)?(?:NULL_FILTERED\s+)?(TABLE|INDEX)\s+` + "`?" + `(\w+)`)

// objectName returns "table:name" or "index:name" for CREATE statements.
func objectName(stmt string) (string, bool) {
	m := createObject.FindStringSubmatch(strings.TrimSpace(stmt))
	if m == nil {
		return "", false
	}
	return strings.ToLower(m[1]) + ":" + strings.ToLower(m[2]), true
}

func schemaObjects(statements []string) map[string]struct{} {
	objects := make(map[string]struct{})
	for _, stmt := range statements {
		if name, ok := objectName(stmt); ok {
			objects[name] = struct{}{}
		}
	}
	return objects
}

// pendingStatements drops CREATE statements for objects that already exist.
func pendingStatements(statements []string, existing map[string]struct{}) []string {
	var pending []string
	for _, stmt := range statements {
		if name, ok := objectName(stmt); ok {
			if _, done := existing[name]; done {
				continue
			}
		}
		pending = append(pending, stmt)
	}
	return pending
}
