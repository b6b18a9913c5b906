package repository

type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password;not null"` // hex digest or bcrypt hash
}

// Contact belongs to a User through UserID. The constraint is declared in the
// schema but SQLite does not enforce it.
type Contact struct {
	ID     int64 `gorm:"primaryKey;autoIncrement"`
	UserID int64 `gorm:"index"`
	User   *User `gorm:"foreignKey:UserID"`
	Name   string
	Email  string
	Phone  string
}
