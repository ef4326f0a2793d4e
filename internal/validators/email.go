package validators

import (
	"net/mail"
	"strings"
)

// IsEmailValid faz só a checagem estrutural do endereço; sem consulta DNS.
func IsEmailValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}

	at := strings.LastIndex(email, "@")
	domain := email[at+1:]

	return strings.Contains(domain, ".")
}
