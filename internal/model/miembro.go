package model

// Miembro is a congregation member who can be credited with offerings.
// Remote table: members (id, name, is_active).
type Miembro struct {
	ID       string `json:"id"`
	Nombre   string `json:"name"`
	IsActive bool   `json:"isActive"`
}

// Categoria is an offering category. Identity is the name; ID is the remote
// row id, needed only for deletion. Remote table: categories (id, name).
type Categoria struct {
	ID     string `json:"id"`
	Nombre string `json:"name"`
}

// Comisionado is a member of the local finance committee.
// Remote table: comisionados (id, nombre, cargo).
type Comisionado struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Cargo  string `json:"cargo"`
}
