package utils

import "golang.org/x/crypto/bcrypt"

// HashSenha gera o hash bcrypt da senha do operador da locadora, usado no
// cadastro de usuários.
func HashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckSenha confere no login a senha informada contra o hash armazenado.
func CheckSenha(hash, senha string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha))
	return err == nil
}
