package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/laundrypro/go-laundry-service/internal/app/entity"
	err_storage "github.com/laundrypro/go-laundry-service/internal/app/storage/api/errors"
)

const (
	usersCollection    = "users"
	servicesCollection = "services"
	ordersCollection   = "orders"
)

type Mongo struct {
	client *mongo.Client

	users    *mongo.Collection
	services *mongo.Collection
	orders   *mongo.Collection
}

func NewMongoStorage(ctx context.Context, uri, dbName string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("error while mongodb connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("error while pinging mongodb: %w", err)
	}

	db := client.Database(dbName)

	instance := &Mongo{
		client:   client,
		users:    db.Collection(usersCollection),
		services: db.Collection(servicesCollection),
		orders:   db.Collection(ordersCollection),
	}

	if err := instance.createIndexes(ctx); err != nil {
		return nil, err
	}

	return instance, nil
}

func (s *Mongo) createIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("error while creating unique email index: %w", err)
	}

	_, err = s.orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("error while creating order user index: %w", err)
	}

	return nil
}

func (s *Mongo) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Mongo) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Mongo) CreateUser(ctx context.Context, user entity.User) error {
	_, err := s.users.InsertOne(ctx, createUserDocument(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return err_storage.ErrEmailExists
		}

		return fmt.Errorf("error while inserting user: %w", err)
	}

	return nil
}

func (s *Mongo) GetUserByEmail(ctx context.Context, email string) (entity.User, error) {
	var doc userDocument
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entity.User{}, err_storage.ErrUserNotFound
		}

		return entity.User{}, fmt.Errorf("error while getting user by email: %w", err)
	}

	return doc.toEntity(), nil
}

func (s *Mongo) GetUserByID(ctx context.Context, userID entity.UserID) (entity.User, error) {
	var doc userDocument
	err := s.users.FindOne(ctx, bson.M{"_id": userID.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entity.User{}, err_storage.ErrUserNotFound
		}

		return entity.User{}, fmt.Errorf("error while getting user by id: %w", err)
	}

	return doc.toEntity(), nil
}

func (s *Mongo) GetServices(ctx context.Context, activeOnly bool) (entity.Services, error) {
	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "price", Value: 1}})
	cursor, err := s.services.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error while getting services: %w", err)
	}

	var docs []serviceDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error while decoding services: %w", err)
	}

	services := make(entity.Services, 0, len(docs))
	for _, doc := range docs {
		services = append(services, doc.toEntity())
	}

	return services, nil
}

func (s *Mongo) GetService(ctx context.Context, serviceID entity.ServiceID) (entity.Service, error) {
	var doc serviceDocument
	err := s.services.FindOne(ctx, bson.M{"_id": serviceID.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entity.Service{}, err_storage.ErrServiceNotFound
		}

		return entity.Service{}, fmt.Errorf("error while getting service: %w", err)
	}

	return doc.toEntity(), nil
}

func (s *Mongo) CreateService(ctx context.Context, service entity.Service) error {
	_, err := s.services.InsertOne(ctx, createServiceDocument(service))
	if err != nil {
		return fmt.Errorf("error while inserting service: %w", err)
	}

	return nil
}

func (s *Mongo) UpdateService(ctx context.Context, service entity.Service) error {
	doc := createServiceDocument(service)
	doc.DateUpdated = time.Now()

	result, err := s.services.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return fmt.Errorf("error while updating service: %w", err)
	}

	if result.MatchedCount == 0 {
		return err_storage.ErrServiceNotFound
	}

	return nil
}

func (s *Mongo) DeleteService(ctx context.Context, serviceID entity.ServiceID) error {
	result, err := s.services.DeleteOne(ctx, bson.M{"_id": serviceID.String()})
	if err != nil {
		return fmt.Errorf("error while deleting service: %w", err)
	}

	if result.DeletedCount == 0 {
		return err_storage.ErrServiceNotFound
	}

	return nil
}

func (s *Mongo) CountServices(ctx context.Context) (int64, error) {
	count, err := s.services.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error while counting services: %w", err)
	}

	return count, nil
}

func (s *Mongo) CreateOrder(ctx context.Context, order entity.Order) error {
	_, err := s.orders.InsertOne(ctx, createOrderDocument(order))
	if err != nil {
		return fmt.Errorf("error while inserting order: %w", err)
	}

	return nil
}

func (s *Mongo) GetOrder(ctx context.Context, orderID entity.OrderID) (entity.Order, error) {
	var doc orderDocument
	err := s.orders.FindOne(ctx, bson.M{"_id": orderID.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entity.Order{}, err_storage.ErrOrderNotFound
		}

		return entity.Order{}, fmt.Errorf("error while getting order: %w", err)
	}

	return doc.toEntity(), nil
}

func (s *Mongo) GetUserOrders(ctx context.Context, userID entity.UserID) (entity.Orders, error) {
	orders, err := s.findOrders(ctx, bson.M{"user_id": userID.String()})
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return nil, err_storage.ErrOrdersForUserNotFound
	}

	return orders, nil
}

func (s *Mongo) GetOrders(ctx context.Context, filter entity.OrderFilter) (entity.Orders, error) {
	query := bson.M{}
	if len(filter.Status) != 0 {
		query["status"] = string(filter.Status)
	}
	if filter.UserID.Valid() {
		query["user_id"] = filter.UserID.String()
	}
	if !filter.DateFrom.IsZero() || !filter.DateTo.IsZero() {
		createdAt := bson.M{}
		if !filter.DateFrom.IsZero() {
			createdAt["$gte"] = filter.DateFrom
		}
		if !filter.DateTo.IsZero() {
			createdAt["$lte"] = filter.DateTo
		}
		query["created_at"] = createdAt
	}

	return s.findOrders(ctx, query)
}

func (s *Mongo) findOrders(ctx context.Context, query bson.M) (entity.Orders, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.orders.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("error while getting orders: %w", err)
	}

	var docs []orderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error while decoding orders: %w", err)
	}

	orders := make(entity.Orders, 0, len(docs))
	for _, doc := range docs {
		orders = append(orders, doc.toEntity())
	}

	return orders, nil
}

func (s *Mongo) UpdateOrderStatus(ctx context.Context, orderID entity.OrderID, update entity.OrderStatusUpdate) (entity.Order, error) {
	now := time.Now()

	set := bson.M{
		"status":     string(update.Status),
		"updated_at": now,
	}
	if len(update.AdminNotes) != 0 {
		set["admin_notes"] = update.AdminNotes
	}
	if len(update.CancellationReason) != 0 {
		set["cancellation_reason"] = update.CancellationReason
	}
	if update.Status == entity.StatusDelivered {
		set["completed_at"] = now
	}
	if update.Status == entity.StatusCancelled {
		set["cancelled_at"] = now
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc orderDocument
	err := s.orders.FindOneAndUpdate(ctx, bson.M{"_id": orderID.String()}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entity.Order{}, err_storage.ErrOrderNotFound
		}

		return entity.Order{}, fmt.Errorf("error while updating order status: %w", err)
	}

	return doc.toEntity(), nil
}
