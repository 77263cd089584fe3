// カタログローダー。APIに商品の書き込み口は無いので、ここから投入する。
package main

import (
	"context"
	"log"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

var catalog = []model.Product{
	{Name: "Paracetamol 500mg", Description: "Pain relief and fever reducer tablets", Price: 25.00, Category: "Medicines", Stock: 500, RequiresPrescription: false, ImageURL: "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?w=500"},
	{Name: "Ibuprofen 400mg", Description: "Anti-inflammatory pain relief tablets", Price: 45.00, Category: "Medicines", Stock: 300, RequiresPrescription: false, ImageURL: "https://images.unsplash.com/photo-1471864190281-a93a3070b6de?w=500"},
	{Name: "Amoxicillin 500mg", Description: "Antibiotic for bacterial infections", Price: 120.00, Category: "Medicines", Stock: 200, RequiresPrescription: true, ImageURL: "https://images.unsplash.com/photo-1587854692152-cbe660dbde88?w=500"},
	{Name: "Cetirizine 10mg", Description: "Allergy relief antihistamine tablets", Price: 35.00, Category: "Medicines", Stock: 400, RequiresPrescription: false, ImageURL: "https://images.unsplash.com/photo-1584017911766-d451b3d0e843?w=500"},
	{Name: "Cough Syrup 100ml", Description: "Relief from dry and wet cough", Price: 95.00, Category: "Medicines", Stock: 350, RequiresPrescription: false, ImageURL: "https://images.unsplash.com/photo-1631549916768-4119b2e5f926?w=500"},
	{Name: "Vitamin C 1000mg", Description: "Immune system booster tablets", Price: 280.00, Category: "Vitamins & Supplements", Stock: 400, RequiresPrescription: false, ImageURL: "https://images.unsplash.com/photo-1607619056574-7b8d3ee536b2?w=500"},
	{Name: "Multivitamin Tablets", Description: "Complete daily nutrition supplement", Price: 320.00, Category: "Vitamins & Supplements", Stock: 450, RequiresPrescription: false, ImageURL: "https://images.unsplash.com/photo-1607619056574-7b8d3ee536b2?w=500"},
	{Name: "Omega-3 Fish Oil", Description: "Heart health and brain function", Price: 450.00, Category: "Vitamins & Supplements", Stock: 200, RequiresPrescription: false, ImageURL: "https://images.unsplash.com/photo-1550572017-4781748380ae?w=500"},
	{Name: "Hand Sanitizer 500ml", Description: "99.9% germ protection alcohol-based", Price: 120.00, Category: "Personal Care", Stock: 600, RequiresPrescription: false, ImageURL: "https://images.unsplash.com/photo-1584744982491-665216d95f8b?w=500"},
	{Name: "Face Masks (Pack of 50)", Description: "3-ply disposable surgical masks", Price: 250.00, Category: "Personal Care", Stock: 500, RequiresPrescription: false, ImageURL: "https://images.unsplash.com/photo-1584483766114-2cea6facdf57?w=500"},
	{Name: "Blood Pressure Monitor", Description: "Digital BP monitoring device", Price: 1500.00, Category: "Medical Devices", Stock: 100, RequiresPrescription: false, ImageURL: "https://images.unsplash.com/photo-1615486511262-2e1d79e00a80?w=500"},
	{Name: "Pulse Oximeter", Description: "Measure oxygen saturation and pulse", Price: 1200.00, Category: "Medical Devices", Stock: 200, RequiresPrescription: false, ImageURL: "https://images.unsplash.com/photo-1584820927498-cfe5211fd8bf?w=500"},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.Product{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	//既に商品があれば何もしない
	var count int64
	if err := gormDB.Model(&model.Product{}).Count(&count).Error; err != nil {
		log.Fatalf("count: %v", err)
	}
	if count > 0 {
		log.Printf("products already seeded (%d rows), skipping", count)
		return
	}

	repo := infraRepo.NewProductGormRepository(gormDB)
	ctx := context.Background()

	for _, p := range catalog {
		p.ID = uuid.NewString()
		if err := repo.Create(ctx, p); err != nil {
			log.Fatalf("seed %q: %v", p.Name, err)
		}
	}

	log.Printf("seeded %d products", len(catalog))
}
