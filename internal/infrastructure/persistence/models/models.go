package models

// All lists every model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&CommuneModel{},
		&ThemeModel{},
		&UserModel{},
		&InterventionModel{},
		&PieceJointeModel{},
		&ArchiveModel{},
	}
}
