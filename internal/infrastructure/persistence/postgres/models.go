package postgres

// SolicitacaoModel é o model GORM para solicitações
type SolicitacaoModel struct {
	ID            string `gorm:"type:uuid;primary_key"`
	Titulo        string `gorm:"type:varchar(255);not null"`
	CategoriaID   string `gorm:"type:uuid;not null;index"`
	ClienteID     string `gorm:"type:uuid;not null;index"`
	Prioridade    string `gorm:"type:varchar(20);not null"`
	Status        string `gorm:"type:varchar(20);not null;index"`
	DataPrazo     *int64 `gorm:"index"`
	DataConclusao *int64
	Descricao     string `gorm:"type:text"`
	CreatedAt     int64  `gorm:"index"`
	UpdatedAt     int64

	Categoria *CategoriaModel `gorm:"foreignKey:CategoriaID"`
	Cliente   *ProfileModel   `gorm:"foreignKey:ClienteID"`
}

func (SolicitacaoModel) TableName() string {
	return "solicitacoes"
}

// ProfileModel é o model GORM para perfis de usuário
type ProfileModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	Nome      string `gorm:"type:varchar(255);not null"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Empresa   string `gorm:"type:varchar(255)"`
	Telefone  string `gorm:"type:varchar(50)"`
	SenhaHash string `gorm:"type:varchar(255);not null"`
	UserType  string `gorm:"type:varchar(20);not null;index"`
	Status    string `gorm:"type:varchar(50)"`
	CreatedAt int64
	UpdatedAt int64
}

func (ProfileModel) TableName() string {
	return "profiles"
}

// CategoriaModel é o model GORM para categorias de solicitação
type CategoriaModel struct {
	ID   string `gorm:"type:uuid;primary_key"`
	Nome string `gorm:"type:varchar(255);uniqueIndex;not null"`
}

func (CategoriaModel) TableName() string {
	return "categorias"
}
