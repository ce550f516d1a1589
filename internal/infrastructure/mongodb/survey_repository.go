package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/entities"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SurveyRepository guarda cada pesquisa como um documento da coleção `surveys`
type SurveyRepository struct {
	collection *mongo.Collection
	location   *time.Location
}

// NewSurveyRepository cria uma nova instância de SurveyRepository
func NewSurveyRepository(db *mongo.Database, location *time.Location) *SurveyRepository {
	return &SurveyRepository{
		collection: db.Collection(SurveysCollection),
		location:   location,
	}
}

// TimestampFilter monta o filtro bson do intervalo inclusivo
func TimestampFilter(filter repositories.DateFilter) bson.M {
	if !filter.Active() {
		return bson.M{}
	}
	return bson.M{"timestamp": bson.M{
		"$gte": filter.Start.UTC(),
		"$lte": filter.End.UTC(),
	}}
}

func (r *SurveyRepository) Fetch(ctx context.Context, filter repositories.DateFilter) ([]entities.SurveyRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := r.collection.Find(ctx, TimestampFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar pesquisas: %w", err)
	}
	defer cursor.Close(ctx)

	var records []entities.SurveyRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("erro ao decodificar pesquisas: %w", err)
	}

	for i := range records {
		records[i].Timestamp = records[i].Timestamp.In(r.location)
	}
	return records, nil
}

// Create insere o documento; chave duplicada significa que o registro já foi gravado
func (r *SurveyRepository) Create(ctx context.Context, record *entities.SurveyRecord) error {
	doc := *record
	doc.Timestamp = record.Timestamp.UTC()

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("erro ao salvar pesquisa: %w", err)
	}
	return nil
}

// AdminRepository consulta a coleção admin_users
type AdminRepository struct {
	collection *mongo.Collection
}

// NewAdminRepository cria uma nova instância de AdminRepository
func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{collection: db.Collection(AdminsCollection)}
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*entities.AdminUser, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *AdminRepository) FindByID(ctx context.Context, id string) (*entities.AdminUser, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *AdminRepository) Create(ctx context.Context, admin *entities.AdminUser) error {
	if _, err := r.collection.InsertOne(ctx, admin); err != nil {
		return fmt.Errorf("erro ao criar administrador: %w", err)
	}
	return nil
}

func (r *AdminRepository) findOne(ctx context.Context, filter bson.M) (*entities.AdminUser, error) {
	var admin entities.AdminUser
	if err := r.collection.FindOne(ctx, filter).Decode(&admin); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrAdminNotFound
		}
		return nil, fmt.Errorf("erro ao buscar administrador: %w", err)
	}
	return &admin, nil
}
