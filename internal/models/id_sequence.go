package models

// IDSequence is one row of id_sequences: the last number issued in a
// namespace ("enquiry" or "matter:<year>").
type IDSequence struct {
	Namespace string `db:"namespace" gorm:"primaryKey;size:32"`
	LastValue int64  `db:"last_value" gorm:"not null"`
}

// TableName pins the table name for gorm.
func (IDSequence) TableName() string { return "id_sequences" }
