package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleDeveloper = "developer"
	RoleEmployee  = "employee"
)

// Módulos de la aplicación sobre los que se otorgan permisos.
const (
	ModuleUsers     = "control_usuarios"
	ModuleInventory = "inventario"
	ModuleSales     = "ventas_diarias"
)

// Capability permisos de un rol sobre un módulo.
type Capability struct {
	Read   bool `json:"read"`
	Write  bool `json:"write"`
	Delete bool `json:"delete"`
}

// Permissions mapa módulo -> capacidades.
type Permissions map[string]Capability

// PermissionsForRoles devuelve la tabla de capacidades fija del catálogo de roles.
// admin y developer tienen acceso total; employee solo opera ventas.
// Roles desconocidos reciben permisos vacíos.
func PermissionsForRoles(roles []string) Permissions {
	for _, r := range roles {
		if r == RoleAdmin || r == RoleDeveloper {
			return Permissions{
				ModuleUsers:     {Read: true, Write: true, Delete: true},
				ModuleInventory: {Read: true, Write: true, Delete: true},
				ModuleSales:     {Read: true, Write: true, Delete: true},
			}
		}
	}
	for _, r := range roles {
		if r == RoleEmployee {
			return Permissions{
				ModuleUsers:     {},
				ModuleInventory: {},
				ModuleSales:     {Read: true, Write: true, Delete: false},
			}
		}
	}
	return Permissions{}
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	FullName     string
	Username     string // derivado de FullName al crear
	Email        string // único
	PasswordHash string // bcrypt hash, nunca plano después de crear
	Roles        []string
	IsEnabled    bool
	Permissions  Permissions // derivado del catálogo de roles
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
