package models

type Role string

const (
	UserRole  Role = "user"
	AdminRole Role = "admin"
)

// User représente un utilisateur dans la base de données
// @Description Utilisateur pouvant soumettre ou résoudre des signalements
type User struct {
	ID    int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Email string  `json:"email" gorm:"uniqueIndex;not null"`
	Name  *string `json:"name"`
	Role  Role    `json:"role" gorm:"type:varchar(10);default:user"`
}

func (User) TableName() string {
	return "users"
}
