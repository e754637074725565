// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Review is a user's rating of a restaurant.
type Review struct {
	ID         string    `json:"id"`
	AuthorUID  string    `json:"author_uid"`
	Restaurant string    `json:"restaurant"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the name of the database table associated with the
// Review model.
func (r Review) TableName() string {
	return "reviews"
}
