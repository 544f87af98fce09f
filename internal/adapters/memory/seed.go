package memory

import (
	"context"

	"github.com/shopspring/decimal"

	"vetcare-pro/internal/domain/appointments"
	"vetcare-pro/internal/domain/pets"
	"vetcare-pro/internal/domain/products"
)

// Seed carga el dataset de demo del modo offline (el mismo del front
// original, con los enums ya en dominio).
func Seed(petsRepo *PetsRepo, apptsRepo *AppointmentsRepo, productsRepo *ProductsRepo) {
	ctx := context.Background()

	petsRepo.SetOwner("1", "Ana Silva")
	petsRepo.SetOwner("2", "Carlos Souza")

	seedPets := []pets.Pet{
		{ID: "p1", Name: "Thor", Species: pets.SpeciesCanine, Breed: "Golden Retriever", Age: 5, Weight: 32.5, OwnerID: "1", LastVisit: "2023-10-15", ImageURL: "https://picsum.photos/200/200?random=1"},
		{ID: "p2", Name: "Luna", Species: pets.SpeciesFeline, Breed: "Siamês", Age: 2, Weight: 4.1, OwnerID: "2", LastVisit: "2024-01-20", ImageURL: "https://picsum.photos/200/200?random=2"},
		{ID: "p3", Name: "Paçoca", Species: pets.SpeciesCanine, Breed: "SRD", Age: 8, Weight: 12, OwnerID: "1", LastVisit: "2024-02-10", ImageURL: "https://picsum.photos/200/200?random=3"},
	}
	for _, p := range seedPets {
		_, _ = petsRepo.Create(ctx, p)
	}

	seedAppts := []appointments.Appointment{
		{ID: "a1", PetID: "p1", PetName: "Thor", OwnerName: "Ana Silva", Date: "2024-05-20", Time: "09:00", Type: appointments.TypeConsultation, Status: appointments.StatusScheduled},
		{ID: "a2", PetID: "p2", PetName: "Luna", OwnerName: "Carlos Souza", Date: "2024-05-20", Time: "10:30", Type: appointments.TypeVaccine, Status: appointments.StatusScheduled},
		{ID: "a3", PetID: "p3", PetName: "Paçoca", OwnerName: "Ana Silva", Date: "2024-05-20", Time: "14:00", Type: appointments.TypeFollowUp, Status: appointments.StatusCompleted},
		{ID: "a4", PetID: "p1", PetName: "Thor", OwnerName: "Ana Silva", Date: "2024-05-20", Time: "16:00", Type: appointments.TypeSurgery, Status: appointments.StatusScheduled},
		{ID: "a5", PetID: "p2", PetName: "Luna", OwnerName: "Carlos Souza", Date: "2024-05-21", Time: "09:00", Type: appointments.TypeConsultation, Status: appointments.StatusScheduled},
	}
	for _, a := range seedAppts {
		apptsRepo.Seed(a)
	}

	price := func(s string) decimal.Decimal {
		d, _ := decimal.NewFromString(s)
		return d
	}
	seedProducts := []products.Product{
		{ID: "prod1", Name: "Bravecto 20-40kg", Description: "Comprimido mastigável para cães. Proteção de 12 semanas contra pulgas e carrapatos.", Price: price("289.90"), Category: products.CategoryMedication, ImageURL: "https://picsum.photos/300/300?random=10", Stock: 50},
		{ID: "prod2", Name: "Royal Canin Adulto 15kg", Description: "Ração Premium para cães adultos de médio porte. Nutrição balanceada.", Price: price("345.00"), Category: products.CategoryNutrition, ImageURL: "https://picsum.photos/300/300?random=11", Stock: 20},
		{ID: "prod3", Name: "Apoquel 16mg", Description: "Dermatológico para tratamento do prurido associado a dermatites alérgicas.", Price: price("310.50"), Category: products.CategoryMedication, ImageURL: "https://picsum.photos/300/300?random=12", Stock: 35},
		{ID: "prod4", Name: "Shampoo Hipoalergênico", Description: "Para cães e gatos com pele sensível. pH balanceado.", Price: price("45.90"), Category: products.CategoryHygiene, ImageURL: "https://picsum.photos/300/300?random=13", Stock: 100},
		{ID: "prod5", Name: "Vermífugo Drontal", Description: "Comprimido para tratamento de vermes intestinais em cães.", Price: price("89.00"), Category: products.CategoryMedication, ImageURL: "https://picsum.photos/300/300?random=14", Stock: 80},
		{ID: "prod6", Name: "Coleira Antipulgas Seresto", Description: "Proteção contínua por até 8 meses. Resistente à água.", Price: price("220.00"), Category: products.CategoryAccessories, ImageURL: "https://picsum.photos/300/300?random=15", Stock: 45},
	}
	for _, p := range seedProducts {
		_, _ = productsRepo.Create(ctx, p)
	}
}
