/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log Fields.
const (
	FieldAdditionalMessage = "additionalMessage"
	FieldBlobName          = "blobName"
	FieldCommand           = "command"
	FieldComponent         = "component"
	FieldEvent             = "event"
	FieldExitCode          = "exitCode"
	FieldSubject           = "subject"
	FieldTransactionHash   = "transactionHash"
	FieldUserLogLevel      = "userLogLevel"
	FieldVerificationID    = "verificationID"
	FieldVerificationType  = "verificationType"
	FieldWorkDir           = "workDir"
)

// WithAdditionalMessage sets the AdditionalMessage field.
func WithAdditionalMessage(value string) zap.Field {
	return zap.Any(FieldAdditionalMessage, value)
}

// WithBlobName sets the BlobName field.
func WithBlobName(name string) zap.Field {
	return zap.String(FieldBlobName, name)
}

// WithCommand sets the Command field.
func WithCommand(command string) zap.Field {
	return zap.String(FieldCommand, command)
}

// WithComponent sets the Component field.
func WithComponent(component string) zap.Field {
	return zap.String(FieldComponent, component)
}

// WithEvent sets the Event field.
func WithEvent(event interface{}) zap.Field {
	return zap.Inline(NewObjectMarshaller(FieldEvent, event))
}

// WithExitCode sets the ExitCode field.
func WithExitCode(code int) zap.Field {
	return zap.Int(FieldExitCode, code)
}

// WithSubject sets the Subject (registry account) field.
func WithSubject(subject string) zap.Field {
	return zap.String(FieldSubject, subject)
}

// WithTransactionHash sets the TransactionHash field.
func WithTransactionHash(hash string) zap.Field {
	return zap.String(FieldTransactionHash, hash)
}

// WithUserLogLevel sets the UserLogLevel field.
func WithUserLogLevel(logLevel string) zap.Field {
	return zap.String(FieldUserLogLevel, logLevel)
}

// WithVerificationID sets the VerificationID field.
func WithVerificationID(id string) zap.Field {
	return zap.String(FieldVerificationID, id)
}

// WithVerificationType sets the VerificationType field.
func WithVerificationType(verificationType int) zap.Field {
	return zap.Int(FieldVerificationType, verificationType)
}

// WithWorkDir sets the WorkDir field.
func WithWorkDir(dir string) zap.Field {
	return zap.String(FieldWorkDir, dir)
}

// ObjectMarshaller uses reflection to marshal an object's fields.
type ObjectMarshaller struct {
	key string
	obj interface{}
}

// NewObjectMarshaller returns a new ObjectMarshaller.
func NewObjectMarshaller(key string, obj interface{}) *ObjectMarshaller {
	return &ObjectMarshaller{key: key, obj: obj}
}

// MarshalLogObject marshals the object's fields.
func (m *ObjectMarshaller) MarshalLogObject(e zapcore.ObjectEncoder) error {
	return e.AddReflected(m.key, m.obj)
}
