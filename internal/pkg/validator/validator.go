package validator

import (
	"fmt"
	"strings"
)

const maxContentRunes = 500

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateSubmitMessage(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	if len([]rune(content)) > maxContentRunes {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxContentRunes)
	}

	return nil
}

func (v *Validator) ValidateEditMessage(messageID, content string) error {
	if strings.TrimSpace(messageID) == "" {
		return fmt.Errorf("message_id is required")
	}

	return v.ValidateSubmitMessage(content)
}
