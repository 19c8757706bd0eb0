package models

import "time"

type ReportType string

const (
	ReportTypeReview   ReportType = "review"
	ReportTypeUser     ReportType = "user"
	ReportTypeBusiness ReportType = "business"
	ReportTypeService  ReportType = "service"
	ReportTypeOther    ReportType = "other"
)

// Report représente un signalement dans la base de données
// @Description Signalement d'un avis, utilisateur, commerce ou service
type Report struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Type        ReportType `json:"type" gorm:"type:varchar(20);not null"`
	TargetID    int64      `json:"target_id" gorm:"column:target_id;not null"`
	Reason      string     `json:"reason" gorm:"type:text;not null"`
	Description *string    `json:"description" gorm:"type:text"`
	SubmittedBy *int64     `json:"submitted_by" gorm:"column:submitted_by"`
	ResolvedBy  *int64     `json:"resolved_by" gorm:"column:resolved_by"`
	ResolvedAt  *time.Time `json:"resolved_at" gorm:"column:resolved_at"`
	CreatedAt   time.Time  `json:"created_at"`
	Submitter   *User      `json:"submitter" gorm:"foreignKey:SubmittedBy"`
	Resolver    *User      `json:"resolver" gorm:"foreignKey:ResolvedBy"`
}

func (Report) TableName() string {
	return "reports"
}

// ReportCreate modèle pour soumettre un signalement
// @Description modèle pour soumettre un signalement
type ReportCreate struct {
	Type        ReportType `json:"type" binding:"required" example:"review"`
	TargetID    int64      `json:"target_id" binding:"required" example:"101"`
	Reason      string     `json:"reason" binding:"required" example:"Spam content"`
	Description *string    `json:"description" example:"Repeated promotional links"`
	SubmittedBy int64      `json:"submitted_by" binding:"required" example:"2"`
}

// ReportResolve modèle pour résoudre un signalement
// @Description modèle pour marquer un signalement comme résolu
type ReportResolve struct {
	ResolvedBy int64 `json:"resolved_by" binding:"required" example:"1"`
}
