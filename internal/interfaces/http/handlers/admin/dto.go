package admin

type CreateUserRequest struct {
	Nom       string `json:"nom" binding:"required,max=100"`
	Prenom    string `json:"prenom" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Role      string `json:"role" binding:"required"`
	CommuneID *uint  `json:"commune_id"`
}

type SetActifRequest struct {
	Actif *bool `json:"actif" binding:"required"`
}

type CreateCommuneRequest struct {
	Nom string `json:"nom" binding:"required,max=150"`
}

type CreateThemeRequest struct {
	Designation string `json:"designation" binding:"required,max=150"`
}
