package dbmodels

type Department struct {
	BaseModel
	Name string `gorm:"type:varchar(255)"`
}
