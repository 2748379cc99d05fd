package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// The tests in this package run the services against an in-memory store.
// One memStore instance backs every repository handed out by its factory,
// so a test observes exactly what the service persisted.

type memStore struct {
	clients         map[uuid.UUID]*entity.Client
	roles           map[uuid.UUID]*entity.Role
	permissions     map[uuid.UUID]*entity.PermissionGrant
	categories      map[uuid.UUID]*entity.Category
	currencies      map[uuid.UUID]*entity.Currency
	products        map[uuid.UUID]*entity.Product
	documents       map[uuid.UUID]*entity.Document
	characteristics map[uuid.UUID]*entity.Characteristic
	carts           map[uuid.UUID]*entity.Cart
	cartItems       map[uuid.UUID]*entity.CartItem
	orders          map[uuid.UUID]*entity.Order
	orderItems      map[uuid.UUID]*entity.OrderItem
	supports        map[uuid.UUID]*entity.Support
	globalVars      map[uuid.UUID]*entity.GlobalVar
}

func newMemStore() *memStore {
	return &memStore{
		clients:         make(map[uuid.UUID]*entity.Client),
		roles:           make(map[uuid.UUID]*entity.Role),
		permissions:     make(map[uuid.UUID]*entity.PermissionGrant),
		categories:      make(map[uuid.UUID]*entity.Category),
		currencies:      make(map[uuid.UUID]*entity.Currency),
		products:        make(map[uuid.UUID]*entity.Product),
		documents:       make(map[uuid.UUID]*entity.Document),
		characteristics: make(map[uuid.UUID]*entity.Characteristic),
		carts:           make(map[uuid.UUID]*entity.Cart),
		cartItems:       make(map[uuid.UUID]*entity.CartItem),
		orders:          make(map[uuid.UUID]*entity.Order),
		orderItems:      make(map[uuid.UUID]*entity.OrderItem),
		supports:        make(map[uuid.UUID]*entity.Support),
		globalVars:      make(map[uuid.UUID]*entity.GlobalVar),
	}
}

func (s *memStore) factory() repository.RepositoryFactory {
	return &memFactory{store: s}
}

// memTxManager satisfies TransactionManager without any transactional
// behavior; the services' rollback semantics are covered by the persistence
// layer tests.
type memTxManager struct {
	store *memStore
}

func (m *memTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.store.factory())
}

type memFactory struct {
	store *memStore
}

func (f *memFactory) ClientRepo() repository.ClientRepository { return &memClientRepo{f.store} }
func (f *memFactory) RoleRepo() repository.RoleRepository     { return &memRoleRepo{f.store} }
func (f *memFactory) PermissionRepo() repository.PermissionRepository {
	return &memPermissionRepo{f.store}
}
func (f *memFactory) CategoryRepo() repository.CategoryRepository { return &memCategoryRepo{f.store} }
func (f *memFactory) CurrencyRepo() repository.CurrencyRepository { return &memCurrencyRepo{f.store} }
func (f *memFactory) ProductRepo() repository.ProductRepository   { return &memProductRepo{f.store} }
func (f *memFactory) DocumentRepo() repository.DocumentRepository { return &memDocumentRepo{f.store} }
func (f *memFactory) CharacteristicRepo() repository.CharacteristicRepository {
	return &memCharacteristicRepo{f.store}
}
func (f *memFactory) CartRepo() repository.CartRepository         { return &memCartRepo{f.store} }
func (f *memFactory) CartItemRepo() repository.CartItemRepository { return &memCartItemRepo{f.store} }
func (f *memFactory) OrderRepo() repository.OrderRepository       { return &memOrderRepo{f.store} }
func (f *memFactory) OrderItemRepo() repository.OrderItemRepository {
	return &memOrderItemRepo{f.store}
}
func (f *memFactory) SupportRepo() repository.SupportRepository { return &memSupportRepo{f.store} }
func (f *memFactory) GlobalVarRepo() repository.GlobalVarRepository {
	return &memGlobalVarRepo{f.store}
}

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func deletedTime() *time.Time {
	now := time.Now()

	return &now
}

type memClientRepo struct{ store *memStore }

func (r *memClientRepo) List(context.Context) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.store.clients {
		if c.DeletedAt == nil {
			out = append(out, c)
		}
	}

	return out, nil
}

func (r *memClientRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Client, error) {
	if c, ok := r.store.clients[id]; ok {
		return c, nil
	}

	return nil, repository.ErrClientNotFound
}

func (r *memClientRepo) FindByEmail(_ context.Context, email string) (*entity.Client, error) {
	for _, c := range r.store.clients {
		if c.DeletedAt == nil && c.Email == email {
			return c, nil
		}
	}

	return nil, repository.ErrClientNotFound
}

func (r *memClientRepo) FindByPhone(_ context.Context, phone string) (*entity.Client, error) {
	for _, c := range r.store.clients {
		if c.DeletedAt == nil && c.PhoneNumber == phone {
			return c, nil
		}
	}

	return nil, repository.ErrClientNotFound
}

func (r *memClientRepo) Create(_ context.Context, client *entity.Client) error {
	ensureID(&client.ID)
	r.store.clients[client.ID] = client

	return nil
}

func (r *memClientRepo) Update(_ context.Context, client *entity.Client) error {
	r.store.clients[client.ID] = client

	return nil
}

func (r *memClientRepo) SoftDelete(_ context.Context, client *entity.Client) error {
	client.DeletedAt = deletedTime()
	client.Active = false

	return nil
}

type memRoleRepo struct{ store *memStore }

func (r *memRoleRepo) List(context.Context) ([]*entity.Role, error) {
	var out []*entity.Role
	for _, role := range r.store.roles {
		if role.DeletedAt == nil {
			out = append(out, role)
		}
	}

	return out, nil
}

func (r *memRoleRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Role, error) {
	if role, ok := r.store.roles[id]; ok {
		return role, nil
	}

	return nil, repository.ErrRoleNotFound
}

func (r *memRoleRepo) Create(_ context.Context, role *entity.Role) error {
	ensureID(&role.ID)
	r.store.roles[role.ID] = role

	return nil
}

func (r *memRoleRepo) Update(_ context.Context, role *entity.Role) error {
	r.store.roles[role.ID] = role

	return nil
}

func (r *memRoleRepo) SoftDelete(_ context.Context, role *entity.Role) error {
	role.DeletedAt = deletedTime()
	role.Active = false

	return nil
}

type memPermissionRepo struct{ store *memStore }

func (r *memPermissionRepo) List(context.Context) ([]*entity.PermissionGrant, error) {
	var out []*entity.PermissionGrant
	for _, p := range r.store.permissions {
		if p.DeletedAt == nil {
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *memPermissionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.PermissionGrant, error) {
	if p, ok := r.store.permissions[id]; ok {
		return p, nil
	}

	return nil, repository.ErrPermissionNotFound
}

func (r *memPermissionRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.PermissionGrant, error) {
	var out []*entity.PermissionGrant
	for _, id := range ids {
		if p, ok := r.store.permissions[id]; ok && p.DeletedAt == nil {
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *memPermissionRepo) Create(_ context.Context, perm *entity.PermissionGrant) error {
	ensureID(&perm.ID)
	r.store.permissions[perm.ID] = perm

	return nil
}

func (r *memPermissionRepo) Update(_ context.Context, perm *entity.PermissionGrant) error {
	r.store.permissions[perm.ID] = perm

	return nil
}

func (r *memPermissionRepo) SoftDelete(_ context.Context, perm *entity.PermissionGrant) error {
	perm.DeletedAt = deletedTime()
	perm.Active = false

	return nil
}

type memCategoryRepo struct{ store *memStore }

func (r *memCategoryRepo) List(context.Context) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.store.categories {
		if c.DeletedAt == nil {
			out = append(out, c)
		}
	}

	return out, nil
}

func (r *memCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	if c, ok := r.store.categories[id]; ok {
		return c, nil
	}

	return nil, repository.ErrCategoryNotFound
}

func (r *memCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	ensureID(&category.ID)
	r.store.categories[category.ID] = category

	return nil
}

func (r *memCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	r.store.categories[category.ID] = category

	return nil
}

func (r *memCategoryRepo) SoftDelete(_ context.Context, category *entity.Category) error {
	category.DeletedAt = deletedTime()

	return nil
}

type memCurrencyRepo struct{ store *memStore }

func (r *memCurrencyRepo) List(context.Context) ([]*entity.Currency, error) {
	var out []*entity.Currency
	for _, c := range r.store.currencies {
		if c.DeletedAt == nil {
			out = append(out, c)
		}
	}

	return out, nil
}

func (r *memCurrencyRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Currency, error) {
	if c, ok := r.store.currencies[id]; ok {
		return c, nil
	}

	return nil, repository.ErrCurrencyNotFound
}

func (r *memCurrencyRepo) Create(_ context.Context, currency *entity.Currency) error {
	ensureID(&currency.ID)
	r.store.currencies[currency.ID] = currency

	return nil
}

func (r *memCurrencyRepo) Update(_ context.Context, currency *entity.Currency) error {
	r.store.currencies[currency.ID] = currency

	return nil
}

func (r *memCurrencyRepo) SoftDelete(_ context.Context, currency *entity.Currency) error {
	currency.DeletedAt = deletedTime()
	currency.Status = false

	return nil
}

type memProductRepo struct{ store *memStore }

func (r *memProductRepo) List(context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		if p.DeletedAt == nil {
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *memProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	if p, ok := r.store.products[id]; ok {
		return p, nil
	}

	return nil, repository.ErrProductNotFound
}

func (r *memProductRepo) Create(_ context.Context, product *entity.Product) error {
	ensureID(&product.ID)
	r.store.products[product.ID] = product

	return nil
}

func (r *memProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.store.products[product.ID] = product

	return nil
}

func (r *memProductRepo) SoftDelete(_ context.Context, product *entity.Product) error {
	product.DeletedAt = deletedTime()
	product.Status = false

	return nil
}

type memDocumentRepo struct{ store *memStore }

func (r *memDocumentRepo) List(context.Context) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range r.store.documents {
		if d.DeletedAt == nil {
			out = append(out, d)
		}
	}

	return out, nil
}

func (r *memDocumentRepo) ListByProduct(_ context.Context, productID uuid.UUID) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range r.store.documents {
		if d.DeletedAt == nil && d.ProductID == productID {
			out = append(out, d)
		}
	}

	return out, nil
}

func (r *memDocumentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	if d, ok := r.store.documents[id]; ok {
		return d, nil
	}

	return nil, repository.ErrDocumentNotFound
}

func (r *memDocumentRepo) Create(_ context.Context, document *entity.Document) error {
	ensureID(&document.ID)
	r.store.documents[document.ID] = document

	return nil
}

func (r *memDocumentRepo) Update(_ context.Context, document *entity.Document) error {
	r.store.documents[document.ID] = document

	return nil
}

func (r *memDocumentRepo) SoftDelete(_ context.Context, document *entity.Document) error {
	document.DeletedAt = deletedTime()
	document.Status = false

	return nil
}

type memCharacteristicRepo struct{ store *memStore }

func (r *memCharacteristicRepo) List(context.Context) ([]*entity.Characteristic, error) {
	var out []*entity.Characteristic
	for _, c := range r.store.characteristics {
		if c.DeletedAt == nil {
			out = append(out, c)
		}
	}

	return out, nil
}

func (r *memCharacteristicRepo) ListByProduct(_ context.Context, productID uuid.UUID) ([]*entity.Characteristic, error) {
	var out []*entity.Characteristic
	for _, c := range r.store.characteristics {
		if c.DeletedAt == nil && c.ProductID == productID {
			out = append(out, c)
		}
	}

	return out, nil
}

func (r *memCharacteristicRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Characteristic, error) {
	if c, ok := r.store.characteristics[id]; ok {
		return c, nil
	}

	return nil, repository.ErrCharacteristicNotFound
}

func (r *memCharacteristicRepo) Create(_ context.Context, characteristic *entity.Characteristic) error {
	ensureID(&characteristic.ID)
	r.store.characteristics[characteristic.ID] = characteristic

	return nil
}

func (r *memCharacteristicRepo) Update(_ context.Context, characteristic *entity.Characteristic) error {
	r.store.characteristics[characteristic.ID] = characteristic

	return nil
}

func (r *memCharacteristicRepo) SoftDelete(_ context.Context, characteristic *entity.Characteristic) error {
	characteristic.DeletedAt = deletedTime()
	characteristic.Status = false

	return nil
}

type memCartRepo struct{ store *memStore }

func (r *memCartRepo) List(context.Context) ([]*entity.Cart, error) {
	var out []*entity.Cart
	for _, c := range r.store.carts {
		if c.DeletedAt == nil {
			out = append(out, c)
		}
	}

	return out, nil
}

func (r *memCartRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Cart, error) {
	if c, ok := r.store.carts[id]; ok {
		return c, nil
	}

	return nil, repository.ErrCartNotFound
}

func (r *memCartRepo) FindActiveByClient(_ context.Context, clientID uuid.UUID) (*entity.Cart, error) {
	for _, c := range r.store.carts {
		if c.DeletedAt == nil && c.ClientID == clientID {
			return c, nil
		}
	}

	return nil, repository.ErrCartNotFound
}

func (r *memCartRepo) Create(_ context.Context, cart *entity.Cart) error {
	ensureID(&cart.ID)
	r.store.carts[cart.ID] = cart

	return nil
}

func (r *memCartRepo) Update(_ context.Context, cart *entity.Cart) error {
	r.store.carts[cart.ID] = cart

	return nil
}

func (r *memCartRepo) SoftDelete(_ context.Context, cart *entity.Cart) error {
	cart.DeletedAt = deletedTime()
	cart.Status = false

	return nil
}

type memCartItemRepo struct{ store *memStore }

func (r *memCartItemRepo) List(context.Context) ([]*entity.CartItem, error) {
	var out []*entity.CartItem
	for _, item := range r.store.cartItems {
		out = append(out, item)
	}

	return out, nil
}

func (r *memCartItemRepo) ListByCart(_ context.Context, cartID uuid.UUID) ([]*entity.CartItem, error) {
	var out []*entity.CartItem
	for _, item := range r.store.cartItems {
		if item.CartID == cartID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *memCartItemRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.CartItem, error) {
	if item, ok := r.store.cartItems[id]; ok {
		return item, nil
	}

	return nil, repository.ErrCartItemNotFound
}

func (r *memCartItemRepo) Create(_ context.Context, item *entity.CartItem) error {
	ensureID(&item.ID)
	r.store.cartItems[item.ID] = item

	return nil
}

func (r *memCartItemRepo) Update(_ context.Context, item *entity.CartItem) error {
	r.store.cartItems[item.ID] = item

	return nil
}

func (r *memCartItemRepo) Delete(_ context.Context, item *entity.CartItem) error {
	delete(r.store.cartItems, item.ID)

	return nil
}

type memOrderRepo struct{ store *memStore }

func (r *memOrderRepo) List(context.Context) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.store.orders {
		if o.DeletedAt == nil {
			out = append(out, o)
		}
	}

	return out, nil
}

func (r *memOrderRepo) ListByClient(_ context.Context, clientID uuid.UUID) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.store.orders {
		if o.DeletedAt == nil && o.ClientID == clientID {
			out = append(out, o)
		}
	}

	return out, nil
}

func (r *memOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	if o, ok := r.store.orders[id]; ok {
		return o, nil
	}

	return nil, repository.ErrOrderNotFound
}

func (r *memOrderRepo) FindByIDForClient(_ context.Context, id, clientID uuid.UUID) (*entity.Order, error) {
	if o, ok := r.store.orders[id]; ok && o.ClientID == clientID {
		return o, nil
	}

	return nil, repository.ErrOrderNotFound
}

func (r *memOrderRepo) Create(_ context.Context, order *entity.Order) error {
	ensureID(&order.ID)
	r.store.orders[order.ID] = order

	return nil
}

func (r *memOrderRepo) Update(_ context.Context, order *entity.Order) error {
	r.store.orders[order.ID] = order

	return nil
}

func (r *memOrderRepo) SoftDelete(_ context.Context, order *entity.Order) error {
	order.DeletedAt = deletedTime()
	order.Status = entity.OrderDeleted

	return nil
}

type memOrderItemRepo struct{ store *memStore }

func (r *memOrderItemRepo) ListByOrder(_ context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	var out []*entity.OrderItem
	for _, item := range r.store.orderItems {
		if item.OrderID == orderID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *memOrderItemRepo) Create(_ context.Context, item *entity.OrderItem) error {
	ensureID(&item.ID)
	r.store.orderItems[item.ID] = item

	return nil
}

func (r *memOrderItemRepo) DeleteByOrder(_ context.Context, orderID uuid.UUID) error {
	for id, item := range r.store.orderItems {
		if item.OrderID == orderID {
			delete(r.store.orderItems, id)
		}
	}

	return nil
}

type memSupportRepo struct{ store *memStore }

func (r *memSupportRepo) List(context.Context) ([]*entity.Support, error) {
	var out []*entity.Support
	for _, t := range r.store.supports {
		if t.DeletedAt == nil {
			out = append(out, t)
		}
	}

	return out, nil
}

func (r *memSupportRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Support, error) {
	if t, ok := r.store.supports[id]; ok {
		return t, nil
	}

	return nil, repository.ErrSupportNotFound
}

func (r *memSupportRepo) Create(_ context.Context, ticket *entity.Support) error {
	ensureID(&ticket.ID)
	r.store.supports[ticket.ID] = ticket

	return nil
}

func (r *memSupportRepo) Update(_ context.Context, ticket *entity.Support) error {
	r.store.supports[ticket.ID] = ticket

	return nil
}

func (r *memSupportRepo) SoftDelete(_ context.Context, ticket *entity.Support) error {
	ticket.DeletedAt = deletedTime()

	return nil
}

type memGlobalVarRepo struct{ store *memStore }

func (r *memGlobalVarRepo) List(context.Context) ([]*entity.GlobalVar, error) {
	var out []*entity.GlobalVar
	for _, gv := range r.store.globalVars {
		if gv.DeletedAt == nil {
			out = append(out, gv)
		}
	}

	return out, nil
}

func (r *memGlobalVarRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.GlobalVar, error) {
	if gv, ok := r.store.globalVars[id]; ok {
		return gv, nil
	}

	return nil, repository.ErrGlobalVarNotFound
}

func (r *memGlobalVarRepo) FindByKey(_ context.Context, key string) (*entity.GlobalVar, error) {
	for _, gv := range r.store.globalVars {
		if gv.DeletedAt == nil && gv.Key == key {
			return gv, nil
		}
	}

	return nil, repository.ErrGlobalVarNotFound
}

func (r *memGlobalVarRepo) Create(_ context.Context, gv *entity.GlobalVar) error {
	ensureID(&gv.ID)
	r.store.globalVars[gv.ID] = gv

	return nil
}

func (r *memGlobalVarRepo) Update(_ context.Context, gv *entity.GlobalVar) error {
	r.store.globalVars[gv.ID] = gv

	return nil
}

func (r *memGlobalVarRepo) SoftDelete(_ context.Context, gv *entity.GlobalVar) error {
	gv.DeletedAt = deletedTime()

	return nil
}

// plainHasher trades bcrypt for a reversible marker so tests can assert on
// stored values.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (plainHasher) Check(password, hash string) bool     { return "hashed:"+password == hash }

type staticTokenService struct{}

func (staticTokenService) GenerateAccessToken(clientID uuid.UUID) (string, error) {
	return "token-" + clientID.String(), nil
}

func (staticTokenService) ValidateAccessToken(tokenString string) (uuid.UUID, error) {
	return uuid.Nil, errors.New("not implemented")
}

// memFileStore records stored and discarded locators.
type memFileStore struct {
	stored    []string
	discarded []string
	deleted   []string
	failNext  bool
}

func (s *memFileStore) Store(_ context.Context, name string, content io.Reader) (string, error) {
	if s.failNext {
		s.failNext = false

		return "", errors.New("store failed")
	}
	if content != nil {
		if _, err := io.Copy(io.Discard, content); err != nil {
			return "", err
		}
	}
	locator := "media/" + name
	s.stored = append(s.stored, locator)

	return locator, nil
}

func (s *memFileStore) Discard(_ context.Context, locator string) error {
	if s.failNext {
		s.failNext = false

		return errors.New("discard failed")
	}
	s.discarded = append(s.discarded, locator)

	return nil
}

func (s *memFileStore) Delete(_ context.Context, locator string) error {
	s.deleted = append(s.deleted, locator)

	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// seedActor stores a client holding the given permissions through a single
// role and returns it.
func seedActor(store *memStore, perms ...entity.Permission) *entity.Client {
	role := entity.Role{ID: uuid.New(), Name: "test-role", Active: true}
	for _, perm := range perms {
		role.Permissions = append(role.Permissions, entity.PermissionGrant{
			ID:     uuid.New(),
			Name:   perm,
			Active: true,
		})
	}

	actor := &entity.Client{
		ID:     uuid.New(),
		Email:  "actor@example.com",
		Active: true,
		Roles:  entity.Roles{role},
	}
	store.clients[actor.ID] = actor

	return actor
}
