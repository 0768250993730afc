package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"beautysalon/internal/config"
	"beautysalon/internal/database"
	"beautysalon/internal/domain"
	"beautysalon/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (FK-safe order)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM appointments")
	db.Exec("DELETE FROM master_services")
	db.Exec("DELETE FROM masters")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM contacts")
	db.Exec("DELETE FROM salon_info")

	ctx := context.Background()
	serviceRepo := repository.NewServiceRepository(db)
	masterRepo := repository.NewMasterRepository(db)
	contentRepo := repository.NewContentRepository(db)

	// ================== SERVICES ==================
	log.Println("Creating services...")
	services := []domain.Service{
		{Name: "Женская стрижка", Description: "Стрижка любой сложности с укладкой", Price: 2000, Duration: 60, Category: domain.CategoryHair, IsActive: true},
		{Name: "Мужская стрижка", Description: "Классическая или модельная стрижка", Price: 1200, Duration: 45, Category: domain.CategoryHair, IsActive: true},
		{Name: "Окрашивание", Description: "Однотонное окрашивание профессиональными красителями", Price: 4500, Duration: 150, Category: domain.CategoryHair, IsActive: true},
		{Name: "Маникюр с покрытием", Description: "Аппаратный маникюр с гель-лаком", Price: 1800, Duration: 90, Category: domain.CategoryNails, IsActive: true},
		{Name: "Педикюр", Description: "Комплексный уход за стопами", Price: 2200, Duration: 90, Category: domain.CategoryNails, IsActive: true},
		{Name: "Чистка лица", Description: "Комбинированная чистка с уходом", Price: 3000, Duration: 75, Category: domain.CategoryFace, IsActive: true},
		{Name: "Массаж спины", Description: "Расслабляющий массаж, 40 минут", Price: 1900, Duration: 40, Category: domain.CategoryBody, IsActive: true},
		{Name: "Вечерний макияж", Description: "Макияж для особого случая", Price: 2500, Duration: 60, Category: domain.CategoryMakeup, IsActive: true},
	}
	for i := range services {
		if err := serviceRepo.Create(ctx, &services[i]); err != nil {
			log.Fatal("seed service:", err)
		}
	}

	// ================== MASTERS ==================
	log.Println("Creating masters...")
	masters := []struct {
		master   domain.Master
		services []int
	}{
		{
			master: domain.Master{
				Name:           "Анна Соколова",
				Specialization: "Стилист-парикмахер",
				Experience:     8,
				Bio:            "Призёр городских конкурсов парикмахерского искусства.",
				IsActive:       true,
			},
			services: []int{0, 1, 2},
		},
		{
			master: domain.Master{
				Name:           "Мария Ким",
				Specialization: "Мастер маникюра",
				Experience:     5,
				Bio:            "Специалист по сложным дизайнам и укреплению ногтей.",
				IsActive:       true,
			},
			services: []int{3, 4},
		},
		{
			master: domain.Master{
				Name:           "Елена Волкова",
				Specialization: "Косметолог-эстетист",
				Experience:     10,
				Bio:            "Сертифицированный косметолог, работает с чувствительной кожей.",
				IsActive:       true,
			},
			services: []int{5, 6},
		},
		{
			master: domain.Master{
				Name:           "Дарья Лебедева",
				Specialization: "Визажист",
				Experience:     4,
				Bio:            "Свадебный и вечерний макияж.",
				IsActive:       true,
			},
			services: []int{7},
		},
	}
	for i := range masters {
		for _, idx := range masters[i].services {
			masters[i].master.Services = append(masters[i].master.Services, services[idx])
		}
		if err := masterRepo.Create(ctx, &masters[i].master); err != nil {
			log.Fatal("seed master:", err)
		}
	}

	// ================== CONTENT ==================
	log.Println("Creating contact and salon info...")
	contact := domain.Contact{
		Address:      "г. Москва, ул. Пушкина, д. 10",
		Phone:        "+7 (900) 123-45-67",
		Email:        "hello@elegance-salon.ru",
		WorkingHours: "Пн-Сб: 9:00-21:00, Вс: выходной",
		TelegramLink: "https://t.me/elegance_salon",
	}
	if err := contentRepo.SaveContact(ctx, &contact); err != nil {
		log.Fatal("seed contact:", err)
	}

	info := domain.SalonInfo{
		Name:      "Салон красоты Elegance",
		Tagline:   "Красота в каждой детали",
		AboutText: "Мы работаем с 2015 года и собрали команду мастеров, которым доверяют.",
	}
	if err := contentRepo.SaveSalonInfo(ctx, &info); err != nil {
		log.Fatal("seed salon info:", err)
	}

	log.Printf("Done: %d services, %d masters", len(services), len(masters))
}
