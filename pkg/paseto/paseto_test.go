package paseto

import (
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Manajemen-Parkir/models"
)

func TestGenerateAndValidateToken(t *testing.T) {
	user := &models.User{
		ID:    primitive.NewObjectID(),
		Email: "budi.santoso@gmail.com",
		Role:  "user",
	}

	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken gagal: %v", err)
	}
	if !strings.HasPrefix(token, "v2.local.") {
		t.Errorf("token bukan PASETO v2 local: %.20s", token)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken gagal: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("UserID tidak cocok: %s", claims.UserID.Hex())
	}
	if claims.Email != user.Email {
		t.Errorf("Email tidak cocok: %s", claims.Email)
	}
	if claims.Role != user.Role {
		t.Errorf("Role tidak cocok: %s", claims.Role)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("v2.local.bukan-token-yang-sah"); err == nil {
		t.Error("token rusak harusnya ditolak")
	}
	if _, err := ValidateToken(""); err == nil {
		t.Error("token kosong harusnya ditolak")
	}
}
