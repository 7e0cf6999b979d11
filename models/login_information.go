package models

import "encoding/json"

// Request body for `POST /auth/login`.
type LoginInformation struct {
	AccessKeyID     string `json:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key"`
}

func NewLoginInformation(accessKeyID string, secretAccessKey string) *LoginInformation {
	return &LoginInformation{
		AccessKeyID:     accessKeyID,
		SecretAccessKey: secretAccessKey,
	}
}

func (o *LoginInformation) Equal(other *LoginInformation) bool {
	if o == nil || other == nil {
		return o == other
	}
	return *o == *other
}

func (o *LoginInformation) Clone() *LoginInformation {
	if o == nil {
		return nil
	}
	c := *o
	return &c
}

func (o *LoginInformation) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	if err := requireFields(data, "access_key_id", "secret_access_key"); err != nil {
		return err
	}

	type loginInformation LoginInformation
	var v loginInformation
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*o = LoginInformation(v)
	return nil
}
