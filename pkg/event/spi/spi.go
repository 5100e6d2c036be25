/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package spi

import (
	"time"
)

const (
	// AgeVerificationEventTopic age verification topic name.
	AgeVerificationEventTopic = "zkage-age-verification"
)

// EventType event type.
type EventType string

const (
	// AgeVerificationRegistered is published after a verification record was written to the registry.
	AgeVerificationRegistered = EventType("age_verification_registered")
)

type Payload []byte

type Event struct {
	// SpecVersion is spec version(required).
	SpecVersion string `json:"specVersion"`

	// ID identifies the event(required).
	ID string `json:"id"`

	// Source is URI for producer(required).
	Source string `json:"source"`

	// Type defines event type(required).
	Type EventType `json:"type"`

	// Time defines time of occurrence(required).
	Time time.Time `json:"time"`

	// DataContentType is data content type(optional).
	DataContentType string `json:"dataContentType,omitempty"`

	// Data defines message(optional).
	Data Payload `json:"data,omitempty"`

	// TransactionID defines transaction ID(optional).
	TransactionID string `json:"txnId,omitempty"`

	// Subject defines subject(optional).
	Subject string `json:"subject,omitempty"`
}

// RegisteredEventPayload is the data of an AgeVerificationRegistered event.
// Raw age and dates are never included.
type RegisteredEventPayload struct {
	VerificationID   string                 `json:"verificationId"`
	VerificationType int                    `json:"verificationType"`
	Result           bool                   `json:"result"`
	BracketID        int                    `json:"bracketId,omitempty"`
	ExpirationTime   int64                  `json:"expirationTime"`
	MetadataHash     string                 `json:"metadataHash"`
	Metadata         map[string]interface{} `json:"metadata,omitempty"`
}

// Copy an event.
func (m *Event) Copy() *Event {
	return &Event{
		SpecVersion:     m.SpecVersion,
		ID:              m.ID,
		Source:          m.Source,
		Type:            m.Type,
		Time:            m.Time,
		DataContentType: m.DataContentType,
		Data:            m.Data,
		TransactionID:   m.TransactionID,
		Subject:         m.Subject,
	}
}

// NewEventWithPayload creates a new Event with payload.
func NewEventWithPayload(uuid string, source string, eventType EventType, payload Payload) *Event {
	event := NewEvent(uuid, source, eventType)

	event.Data = payload

	// always json
	event.DataContentType = "application/json"

	return event
}

// NewEvent creates a new Event and sets all required fields.
func NewEvent(uuid string, source string, eventType EventType) *Event {
	return &Event{
		SpecVersion: "1.0",
		ID:          uuid,
		Source:      source,
		Type:        eventType,
		Time:        time.Now().UTC(),
	}
}
