package auth

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Permissions checked by the patient routes.
const (
	PermPatientView   = "patient:view"
	PermPatientCreate = "patient:create"
	PermPatientDelete = "patient:delete"
)

// Permissions maps role -> []permission
type Permissions map[string][]string

type permissionsFile struct {
	Roles map[string][]string `yaml:"roles"`
}

// DefaultPermissions is used when no permissions file is configured.
func DefaultPermissions() Permissions {
	return Permissions{
		"ADMIN":     {PermPatientView, PermPatientCreate, PermPatientDelete},
		"CLINICIAN": {PermPatientView, PermPatientCreate},
		"VIEWER":    {PermPatientView},
	}
}

// LoadPermissions loads a permissions.yml file and returns a role->permissions map.
func LoadPermissions(path string) (Permissions, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read permissions: %w", err)
	}
	var pf permissionsFile
	if err := yaml.Unmarshal(b, &pf); err != nil {
		return nil, fmt.Errorf("parse permissions %s: %w", path, err)
	}
	if len(pf.Roles) == 0 {
		return nil, fmt.Errorf("permissions %s: no roles defined", path)
	}
	return Permissions(pf.Roles), nil
}
