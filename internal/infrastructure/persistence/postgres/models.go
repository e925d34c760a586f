package postgres

// ProfileModel é o model GORM para perfis
type ProfileModel struct {
	ID            string  `gorm:"type:uuid;primaryKey"`
	Email         string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username      string  `gorm:"type:varchar(30);uniqueIndex;not null"`
	DisplayName   string  `gorm:"type:varchar(100);not null"`
	PasswordHash  *string `gorm:"type:varchar(255)"`
	OAuthProvider *string `gorm:"column:oauth_provider;type:varchar(30);uniqueIndex:idx_profiles_oauth"`
	OAuthSubject  *string `gorm:"column:oauth_subject;type:varchar(255);uniqueIndex:idx_profiles_oauth"`
	Reputation    int     `gorm:"not null;default:0"`
	Role          string  `gorm:"type:varchar(50);not null;index"`
	CreatedAt     int64   `gorm:"autoCreateTime;index"`
	UpdatedAt     int64   `gorm:"autoUpdateTime"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}

// PasswordResetModel é o model GORM para tokens de redefinição de senha
type PasswordResetModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	ProfileID string `gorm:"type:uuid;not null;index"`
	TokenHash string `gorm:"type:varchar(64);uniqueIndex;not null"`
	ExpiresAt int64  `gorm:"not null"`
	UsedAt    *int64
	CreatedAt int64 `gorm:"autoCreateTime"`
}

func (PasswordResetModel) TableName() string {
	return "password_resets"
}

// BrandModel é o model GORM para marcas
type BrandModel struct {
	ID                 string  `gorm:"type:uuid;primaryKey"`
	Name               string  `gorm:"type:varchar(100);not null"`
	Slug               string  `gorm:"type:varchar(120);uniqueIndex;not null"`
	Verified           bool    `gorm:"not null;default:false;index"`
	VerificationStatus string  `gorm:"type:varchar(20);not null;default:pending;index"`
	LogoURL            *string `gorm:"type:varchar(500)"`
	FoundedYear        *int
	Country            *string `gorm:"type:varchar(100)"`
	Description        *string `gorm:"type:text"`
	EbayURL            *string `gorm:"type:varchar(500)"`
	EtsyURL            *string `gorm:"type:varchar(500)"`
	PoshmarkURL        *string `gorm:"type:varchar(500)"`
	CreatedBy          string  `gorm:"type:uuid;not null"`
	CreatedAt          int64   `gorm:"autoCreateTime;index"`
	UpdatedAt          int64   `gorm:"autoUpdateTime"`
}

func (BrandModel) TableName() string {
	return "brands"
}

// ClothingItemModel é o model GORM para peças
type ClothingItemModel struct {
	ID          string  `gorm:"type:uuid;primaryKey"`
	Name        string  `gorm:"type:varchar(100);not null"`
	Slug        string  `gorm:"type:varchar(120);uniqueIndex;not null"`
	BrandID     *string `gorm:"type:uuid;index"`
	Category    string  `gorm:"type:varchar(50);not null"`
	Description *string `gorm:"type:text"`
	Status      string  `gorm:"type:varchar(20);not null;default:pending;index"`
	SubmittedBy string  `gorm:"type:uuid;not null"`
	CreatedAt   int64   `gorm:"autoCreateTime"`
	UpdatedAt   int64   `gorm:"autoUpdateTime"`
}

func (ClothingItemModel) TableName() string {
	return "clothing_items"
}

// TagModel é o model GORM para etiquetas
type TagModel struct {
	ID                string  `gorm:"type:uuid;primaryKey"`
	BrandID           string  `gorm:"type:uuid;not null;index"`
	ClothingItemID    *string `gorm:"type:uuid;index"`
	Category          string  `gorm:"type:varchar(30);not null"`
	Era               string  `gorm:"type:varchar(20);not null;index"`
	YearStart         *int
	YearEnd           *int
	StitchType        *string `gorm:"type:varchar(50)"`
	OriginCountry     *string `gorm:"type:varchar(100)"`
	Description       *string `gorm:"type:text"`
	ImageURL          string  `gorm:"type:varchar(1000);not null"`
	ImageKey          string  `gorm:"type:varchar(500);not null"`
	SubmittedBy       string  `gorm:"type:uuid;not null;index"`
	Status            string  `gorm:"type:varchar(20);not null;default:pending"`
	VerificationScore int     `gorm:"not null;default:0"`
	CreatedAt         int64   `gorm:"autoCreateTime;index"`
	UpdatedAt         int64   `gorm:"autoUpdateTime"`
}

func (TagModel) TableName() string {
	return "tags"
}

// VoteModel é o model GORM para votos; um voto por (user_id, tag_id)
type VoteModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	UserID    string `gorm:"type:uuid;not null;uniqueIndex:idx_votes_user_tag"`
	TagID     string `gorm:"type:uuid;not null;uniqueIndex:idx_votes_user_tag;index"`
	VoteValue int    `gorm:"not null"`
	CreatedAt int64  `gorm:"autoCreateTime"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
}

func (VoteModel) TableName() string {
	return "votes"
}

// TagEvidenceModel é o model GORM para evidências extras
type TagEvidenceModel struct {
	ID          string  `gorm:"type:uuid;primaryKey"`
	TagID       string  `gorm:"type:uuid;not null;index"`
	ImageURL    string  `gorm:"type:varchar(1000);not null"`
	ImageKey    string  `gorm:"type:varchar(500);not null"`
	Note        *string `gorm:"type:varchar(500)"`
	SubmittedBy string  `gorm:"type:uuid;not null"`
	CreatedAt   int64   `gorm:"autoCreateTime;index"`
}

func (TagEvidenceModel) TableName() string {
	return "tag_evidence"
}
