package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/gahalberto/ImobiManager/config"
	"github.com/gahalberto/ImobiManager/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@imobimanager.dev"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID int
	err = db.QueryRow(`
		INSERT INTO users (first_name, last_name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET first_name = EXCLUDED.first_name
		RETURNING id
	`, "Demo", "User", email, hash).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d email=%s password=%s\n", userID, email, password)

	companies := []string{"Horizonte Imoveis", "Casa Nova Corretora", "Urbana Realty"}
	companyIDs := make([]int, 0, len(companies))
	for _, name := range companies {
		var id int
		if err := db.QueryRow(`
			INSERT INTO companies (name) VALUES ($1) RETURNING id
		`, name).Scan(&id); err != nil {
			log.Fatalf("failed to seed company %q: %v", name, err)
		}
		companyIDs = append(companyIDs, id)
		fmt.Printf("seeded company: id=%d name=%s\n", id, name)
	}

	type seedProperty struct {
		title        string
		zipcode      string
		street       string
		number       int
		complement   string
		neighborhood string
		city         string
		state        string
		price        float64
		description  string
		bedrooms     int
		bathrooms    int
		company      int
	}

	properties := []seedProperty{
		{"Apartamento 2 quartos no centro", "01310-100", "Av. Paulista", 1500, "ap 72", "Bela Vista", "Sao Paulo", "SP", 450000, "Apartamento reformado com vista livre.", 2, 1, companyIDs[0]},
		{"Casa com quintal", "80010-000", "Rua XV de Novembro", 233, "", "Centro", "Curitiba", "PR", 620000, "Casa terrea com quintal amplo e edicula.", 3, 2, companyIDs[0]},
		{"Studio mobiliado", "22041-011", "Rua Bolivar", 21, "cob 1", "Copacabana", "Rio de Janeiro", "RJ", 390000, "Studio mobiliado a duas quadras da praia.", 1, 1, companyIDs[1]},
		{"Cobertura duplex", "30130-010", "Av. Afonso Pena", 4000, "", "Funcionarios", "Belo Horizonte", "MG", 1250000, "Cobertura duplex com area gourmet.", 4, 3, companyIDs[1]},
		{"Kitnet proximo a universidade", "13083-970", "Rua Roxo Moreira", 80, "bl B", "Cidade Universitaria", "Campinas", "SP", 180000, "Kitnet ideal para estudantes.", 1, 1, companyIDs[2]},
	}

	for _, p := range properties {
		var id int
		if err := db.QueryRow(`
			INSERT INTO properties
				(title, address_zipcode, address_street, address_number, address_complement,
				 address_neighborhood, address_city, address_state, price, description,
				 bedrooms, bathrooms, company_id)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
			RETURNING id
		`, p.title, p.zipcode, p.street, p.number, p.complement,
			p.neighborhood, p.city, p.state, p.price, p.description,
			p.bedrooms, p.bathrooms, p.company).Scan(&id); err != nil {
			log.Fatalf("failed to seed property %q: %v", p.title, err)
		}
		fmt.Printf("seeded property: id=%d title=%s\n", id, p.title)
	}

	fmt.Println("done")
}
