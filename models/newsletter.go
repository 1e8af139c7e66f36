package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SubscriberPreferences struct {
	Deals      bool `json:"deals" bson:"deals"`
	Reviews    bool `json:"reviews" bson:"reviews"`
	Guides     bool `json:"guides" bson:"guides"`
	Newsletter bool `json:"newsletter" bson:"newsletter"`
}

type Subscriber struct {
	ID             primitive.ObjectID    `json:"id" bson:"_id,omitempty"`
	Email          string                `json:"email" bson:"email"`
	Name           string                `json:"name,omitempty" bson:"name,omitempty"`
	Status         string                `json:"status" bson:"status"`
	Preferences    SubscriberPreferences `json:"preferences" bson:"preferences"`
	SubscribedAt   time.Time             `json:"subscribedAt" bson:"subscribedAt"`
	UnsubscribedAt *time.Time            `json:"unsubscribedAt,omitempty" bson:"unsubscribedAt,omitempty"`
}

const (
	SubscriberActive       = "active"
	SubscriberUnsubscribed = "unsubscribed"
)
