package repository

import (
	"time"

	"gorm.io/gorm"
)

type serviceModel struct {
	ID          int64   `gorm:"column:id;primaryKey"`
	Name        string  `gorm:"column:name;size:200;not null"`
	Description string  `gorm:"column:description;type:text"`
	Price       float64 `gorm:"column:price;not null"`
	Duration    int     `gorm:"column:duration;not null;default:60"`
	Category    string  `gorm:"column:category;size:20;not null;default:other"`
	Image       string  `gorm:"column:image;size:300"`
	// is_active carries no column default: gorm drops zero values for
	// defaulted columns at insert, losing explicit false
	IsActive bool `gorm:"column:is_active;not null"`
}

func (serviceModel) TableName() string { return "services" }

type masterModel struct {
	ID             int64  `gorm:"column:id;primaryKey"`
	Name           string `gorm:"column:name;size:200;not null"`
	Photo          string `gorm:"column:photo;size:300"`
	Specialization string `gorm:"column:specialization;size:200"`
	Experience     int    `gorm:"column:experience;not null;default:1"`
	Bio            string `gorm:"column:bio;type:text"`
	IsActive       bool   `gorm:"column:is_active;not null"`

	Services []serviceModel `gorm:"many2many:master_services;joinForeignKey:MasterID;joinReferences:ServiceID;constraint:OnDelete:CASCADE"`
}

func (masterModel) TableName() string { return "masters" }

type appointmentModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	ClientName  string    `gorm:"column:client_name;size:200;not null"`
	ClientPhone string    `gorm:"column:client_phone;size:15;not null"`
	ClientEmail string    `gorm:"column:client_email;size:254"`
	MasterID    int64     `gorm:"column:master_id;not null"`
	ServiceID   int64     `gorm:"column:service_id;not null"`
	Date        time.Time `gorm:"column:date;not null"`
	Time        string    `gorm:"column:time;size:5;not null"`
	Status      string    `gorm:"column:status;size:20;not null;default:new"`
	Comment     *string   `gorm:"column:comment"`
	CreatedAt   time.Time `gorm:"column:created_at"`

	Master  *masterModel  `gorm:"foreignKey:MasterID;constraint:OnDelete:CASCADE"`
	Service *serviceModel `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}

func (appointmentModel) TableName() string { return "appointments" }

type contactModel struct {
	ID            int64  `gorm:"column:id;primaryKey"`
	Address       string `gorm:"column:address;size:300;not null"`
	Phone         string `gorm:"column:phone;size:20;not null"`
	Email         string `gorm:"column:email;size:254;not null"`
	WorkingHours  string `gorm:"column:working_hours;size:200"`
	MapEmbed      string `gorm:"column:map_embed;type:text"`
	VKLink        string `gorm:"column:vk_link;size:200"`
	InstagramLink string `gorm:"column:instagram_link;size:200"`
	TelegramLink  string `gorm:"column:telegram_link;size:200"`
}

func (contactModel) TableName() string { return "contacts" }

type salonInfoModel struct {
	ID        int64  `gorm:"column:id;primaryKey"`
	Name      string `gorm:"column:name;size:200;not null"`
	Tagline   string `gorm:"column:tagline;size:300"`
	AboutText string `gorm:"column:about_text;type:text"`
	HeroImage string `gorm:"column:hero_image;size:300"`
}

func (salonInfoModel) TableName() string { return "salon_info" }

// Migrate creates or updates the schema for every salon aggregate.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&serviceModel{},
		&masterModel{},
		&appointmentModel{},
		&contactModel{},
		&salonInfoModel{},
	)
}
