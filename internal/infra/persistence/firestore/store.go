package firestore

import (
	"context"

	"loyalty/internal/domain/repository"
	"loyalty/internal/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// firestoreTransactionManager implements repository.TransactionManager with
// Firestore read-write transactions.
type firestoreTransactionManager struct {
	client *firestore.Client
}

// NewTransactionManager is the constructor for firestoreTransactionManager.
func NewTransactionManager(client *firestore.Client) repository.TransactionManager {
	return &firestoreTransactionManager{client: client}
}

// Execute runs fn inside RunTransaction. Firestore may invoke fn more than once
// on contention, and every read inside fn must precede the first write.
func (tm *firestoreTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	err := tm.client.RunTransaction(ctx, func(txCtx context.Context, tx *firestore.Transaction) error {
		return fn(&repositoryFactory{session: &session{client: tm.client, tx: tx}})
	})
	if err == nil {
		return nil
	}

	switch status.Code(err) {
	case codes.Aborted, codes.AlreadyExists:
		return errors.Wrap(repository.ErrConcurrentModification, err.Error())
	}

	return err
}

// repositoryFactory creates repositories bound to one session.
type repositoryFactory struct {
	session *session
}

// NewRepositoryFactory returns a factory whose repositories run outside of a transaction.
func NewRepositoryFactory(client *firestore.Client) repository.RepositoryFactory {
	return &repositoryFactory{session: &session{client: client}}
}

func (f *repositoryFactory) NewShopRepository() repository.ShopRepository {
	return &shopRepository{s: f.session}
}

func (f *repositoryFactory) NewClientRepository() repository.ClientRepository {
	return &clientRepository{s: f.session}
}

func (f *repositoryFactory) NewRegistrationRepository() repository.RegistrationRepository {
	return &registrationRepository{s: f.session}
}

func (f *repositoryFactory) NewPartnerRepository() repository.PartnerRepository {
	return &partnerRepository{s: f.session}
}

func (f *repositoryFactory) NewGiftRepository() repository.GiftRepository {
	return &giftRepository{s: f.session}
}

func (f *repositoryFactory) NewRedemptionRepository() repository.RedemptionRepository {
	return &redemptionRepository{s: f.session}
}

func (f *repositoryFactory) NewVisitRepository() repository.VisitRepository {
	return &visitRepository{s: f.session}
}

// session routes document operations through the transaction when there is one.
type session struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

func (s *session) get(ctx context.Context, ref *firestore.DocumentRef) (*firestore.DocumentSnapshot, error) {
	if s.tx != nil {
		return s.tx.Get(ref)
	}

	return ref.Get(ctx)
}

func (s *session) documents(ctx context.Context, q firestore.Query) ([]*firestore.DocumentSnapshot, error) {
	if s.tx != nil {
		return s.tx.Documents(q).GetAll()
	}

	return q.Documents(ctx).GetAll()
}

func (s *session) create(ctx context.Context, ref *firestore.DocumentRef, data any) error {
	if s.tx != nil {
		return s.tx.Create(ref, data)
	}

	_, err := ref.Create(ctx, data)

	return err
}

func (s *session) set(ctx context.Context, ref *firestore.DocumentRef, data any) error {
	if s.tx != nil {
		return s.tx.Set(ref, data)
	}

	_, err := ref.Set(ctx, data)

	return err
}

func (s *session) update(ctx context.Context, ref *firestore.DocumentRef, updates []firestore.Update) error {
	if s.tx != nil {
		return s.tx.Update(ref, updates)
	}

	_, err := ref.Update(ctx, updates)

	return err
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}

func (s *session) clientDoc(clientID string) *firestore.DocumentRef {
	return s.client.Collection(clientsCollection).Doc(clientID)
}
