package database

import (
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-site-backend/models"
)

type Database struct {
	userRepo    *UserRepo
	projectRepo *ProjectRepo
	commentRepo *CommentRepo
	likeRepo    *LikeRepo
	skillRepo   *SkillRepo
	contactRepo *ContactRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:    NewUserRepo(db),
		projectRepo: NewProjectRepo(db),
		commentRepo: NewCommentRepo(db),
		likeRepo:    NewLikeRepo(db),
		skillRepo:   NewSkillRepo(db),
		contactRepo: NewContactRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) LikeRepo() *LikeRepo {
	return d.likeRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

// allModels lists every persisted entity in dependency order.
func allModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Project{},
		&models.Comment{},
		&models.Like{},
		&models.Skill{},
		&models.Contact{},
	}
}

// Recreate drops and recreates every table. Destructive; development only.
func Recreate(db *gorm.DB) error {
	for i := len(allModels()) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(allModels()[i]); err != nil {
			return err
		}
	}
	return db.AutoMigrate(allModels()...)
}
