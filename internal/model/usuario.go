package model

// Perfis de acesso reconhecidos pelo sistema.
const (
	PerfilAdmin    = "admin"
	PerfilVendedor = "vendedor"
	PerfilTecnico  = "tecnico"
	PerfilMedico   = "medico"
)

// Perfis lists every assignable profile, in menu order.
var Perfis = []string{PerfilVendedor, PerfilTecnico, PerfilMedico, PerfilAdmin}

// Usuario stores a system login with role-based access.
// Username uniqueness is case-insensitive. The password is stored and compared
// in clear text — a known weakness of the stored data format, kept so existing
// usuarios.json files remain valid.
type Usuario struct {
	Usuario string `json:"usuario"`
	Senha   string `json:"senha"`
	Nome    string `json:"nome"`
	Perfil  string `json:"perfil"`
}

// PerfilValido reports whether p is one of the assignable profiles.
func PerfilValido(p string) bool {
	for _, v := range Perfis {
		if v == p {
			return true
		}
	}
	return false
}
