package model

import (
	"time"

	"github.com/google/uuid"
)

// GroupModel mirrors the 'groups' table.
type GroupModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Members []GroupMemberModel `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (GroupModel) TableName() string {
	return "groups"
}

// GroupMemberModel mirrors the 'group_members' join table. The composite
// primary key is the uniqueness constraint on the pair.
type GroupMemberModel struct {
	GroupID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ContactID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (GroupMemberModel) TableName() string {
	return "group_members"
}
