package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnonymizePhone(t *testing.T) {
	assert.Equal(t, "*******8888", AnonymizePhone("18618618888"))
}

func TestAnonymizePhoneInvalid(t *testing.T) {
	assert.Equal(t, "911", AnonymizePhone("911"))
	assert.Equal(t, "", AnonymizePhone(""))
	assert.Equal(t, "+8618618618888", AnonymizePhone("+8618618618888"))
}

func TestAnonymizeEmail(t *testing.T) {
	assert.Equal(t, "lon*********@gmail.com", AnonymizeEmail("longkerdandy@gmail.com"))
}

func TestAnonymizeEmailShortLocal(t *testing.T) {
	assert.Equal(t, "ab@example.com", AnonymizeEmail("ab@example.com"))
	assert.Equal(t, "abc@example.com", AnonymizeEmail("abc@example.com"))
}

func TestAnonymizeEmailInvalid(t *testing.T) {
	assert.Equal(t, "not-an-email", AnonymizeEmail("not-an-email"))
	assert.Equal(t, "", AnonymizeEmail(""))
}
