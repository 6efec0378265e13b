package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Scan(t *testing.T) {
	t.Run("Valid String", func(t *testing.T) {
		var r Role
		require.NoError(t, r.Scan("RECRUITER"))
		assert.Equal(t, RoleRecruiter, r)
	})

	t.Run("Valid Bytes", func(t *testing.T) {
		var r Role
		require.NoError(t, r.Scan([]byte("ADMIN")))
		assert.Equal(t, RoleAdmin, r)
	})

	t.Run("Invalid Value", func(t *testing.T) {
		var r Role
		assert.Error(t, r.Scan("SUPERUSER"))
	})

	t.Run("Wrong Type", func(t *testing.T) {
		var r Role
		assert.Error(t, r.Scan(42))
	})
}

func TestApplicationStatus_Scan(t *testing.T) {
	for _, valid := range []string{"APPLIED", "REVIEWED", "ACCEPTED", "REJECTED"} {
		var s ApplicationStatus
		require.NoError(t, s.Scan(valid))
		assert.Equal(t, ApplicationStatus(valid), s)
	}

	var s ApplicationStatus
	assert.Error(t, s.Scan("WITHDRAWN"))
}

func TestApprovalStatus_Scan(t *testing.T) {
	for _, valid := range []string{"PENDING", "APPROVED", "REJECTED"} {
		var s ApprovalStatus
		require.NoError(t, s.Scan(valid))
		assert.Equal(t, ApprovalStatus(valid), s)
	}

	var s ApprovalStatus
	assert.Error(t, s.Scan("DENIED"))
}

func TestDocumentType_Scan(t *testing.T) {
	for _, valid := range []string{
		"resume", "profile_picture", "marksheet", "identity_proof", "certificate",
		"registration", "gst", "pan", "business_proof",
	} {
		var d DocumentType
		require.NoError(t, d.Scan(valid), valid)
		assert.Equal(t, DocumentType(valid), d)
	}

	var d DocumentType
	assert.Error(t, d.Scan("passport"))
}

func TestComplianceDocumentTypes(t *testing.T) {
	assert.ElementsMatch(t, []DocumentType{
		DocumentTypeRegistration,
		DocumentTypeGST,
		DocumentTypePAN,
		DocumentTypeBusinessProof,
	}, ComplianceDocumentTypes)
}

func TestEnum_Value(t *testing.T) {
	v, err := RoleStudent.Value()
	require.NoError(t, err)
	assert.Equal(t, "STUDENT", v)

	v, err = DocumentTypeBusinessProof.Value()
	require.NoError(t, err)
	assert.Equal(t, "business_proof", v)
}
