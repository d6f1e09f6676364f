package models

import (
	"time"
)

// DefaultProfileImage プロフィール画像未設定時のファイル名
const DefaultProfileImage = "default.png"

// User ユーザーモデル
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FullName     string    `json:"full_name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Phone        string    `json:"phone"`
	Bio          string    `json:"bio"`
	ProfileImage string    `json:"profile_image" gorm:"not null;default:'default.png'"`
	CreatedAt    time.Time `json:"created_at"`

	// リレーション
	Blogs    []Blog    `json:"-"`
	Comments []Comment `json:"-"`
}

// Blog ブログ記事モデル
type Blog struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	HeaderImage string    `json:"header_image"`
	CreatedAt   time.Time `json:"created_at"`

	// リレーション
	User     *User     `json:"author,omitempty" gorm:"foreignKey:UserID"`
	Comments []Comment `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// Comment コメントモデル
type Comment struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	BlogID      uint      `json:"blog_id" gorm:"not null;index"`
	CommentText string    `json:"comment_text" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at"`

	// リレーション
	User *User `json:"commenter,omitempty" gorm:"foreignKey:UserID"`
	Blog Blog  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
