package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProductID  primitive.ObjectID `json:"productId" bson:"productId"`
	UserName   string             `json:"userName" bson:"userName"`
	UserImage  string             `json:"userImage,omitempty" bson:"userImage,omitempty"`
	Rating     int                `json:"rating" bson:"rating"`
	Title      string             `json:"title" bson:"title"`
	Comment    string             `json:"comment" bson:"comment"`
	Verified   bool               `json:"verified" bson:"verified"`
	Helpful    int                `json:"helpful" bson:"helpful"`
	NotHelpful int                `json:"notHelpful" bson:"notHelpful"`
	Images     []string           `json:"images,omitempty" bson:"images,omitempty"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}
