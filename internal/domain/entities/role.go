package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Permission representa uma permissão específica
type Permission string

const (
	// Catálogo
	PermissionBrandCreate   Permission = "brands.create"
	PermissionBrandModerate Permission = "brands.moderate"
	PermissionItemCreate    Permission = "items.create"
	PermissionItemModerate  Permission = "items.moderate"

	// Comunidade
	PermissionTagSubmit   Permission = "tags.submit"
	PermissionVoteCast    Permission = "votes.cast"
	PermissionUploadPurge Permission = "uploads.purge"
)

// RolePermissions mapeia roles para suas permissões
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionBrandCreate,
		PermissionBrandModerate,
		PermissionItemCreate,
		PermissionItemModerate,
		PermissionTagSubmit,
		PermissionVoteCast,
		PermissionUploadPurge,
	},
	RoleUser: {
		PermissionBrandCreate,
		PermissionItemCreate,
		PermissionTagSubmit,
		PermissionVoteCast,
	},
}

// GetPermissions retorna permissões de um role
func (r Role) GetPermissions() []Permission {
	return RolePermissions[r]
}

// HasPermission verifica se role tem permissão
func (r Role) HasPermission(permission Permission) bool {
	permissions := RolePermissions[r]
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// IsValid verifica se o role é conhecido
func (r Role) IsValid() bool {
	_, ok := RolePermissions[r]
	return ok
}
