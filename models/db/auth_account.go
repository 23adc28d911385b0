package dbmodels

// AuthAccount is the credential record. A Profile with the same ID is
// provisioned lazily on the first authenticated request, not at signup.
type AuthAccount struct {
	BaseModel
	Email        string `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(128)"`
	FullName     string `gorm:"type:varchar(200)"`
}
