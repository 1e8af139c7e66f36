package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Category struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Slug           string             `json:"slug" bson:"slug"`
	Description    string             `json:"description" bson:"description"`
	Icon           string             `json:"icon,omitempty" bson:"icon,omitempty"`
	Image          string             `json:"image,omitempty" bson:"image,omitempty"`
	ParentCategory string             `json:"parentCategory,omitempty" bson:"parentCategory,omitempty"`
	ProductCount   int                `json:"productCount" bson:"productCount"`
	PostCount      int                `json:"postCount" bson:"postCount"`
	Order          int                `json:"order" bson:"order"`
	Active         bool               `json:"active" bson:"active"`
}
