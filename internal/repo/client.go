// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/nephrocare/dialyse_backend/internal/repo/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/nephrocare/dialyse_backend/internal/repo/patient"
	"github.com/nephrocare/dialyse_backend/internal/repo/patientaccessgrant"
	"github.com/nephrocare/dialyse_backend/internal/repo/patientattribution"
	"github.com/nephrocare/dialyse_backend/internal/repo/permissionprofile"
	"github.com/nephrocare/dialyse_backend/internal/repo/user"
	"github.com/nephrocare/dialyse_backend/internal/repo/usersession"

	stdsql "database/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Patient is the client for interacting with the Patient builders.
	Patient *PatientClient
	// PatientAccessGrant is the client for interacting with the PatientAccessGrant builders.
	PatientAccessGrant *PatientAccessGrantClient
	// PatientAttribution is the client for interacting with the PatientAttribution builders.
	PatientAttribution *PatientAttributionClient
	// PermissionProfile is the client for interacting with the PermissionProfile builders.
	PermissionProfile *PermissionProfileClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// UserSession is the client for interacting with the UserSession builders.
	UserSession *UserSessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Patient = NewPatientClient(c.config)
	c.PatientAccessGrant = NewPatientAccessGrantClient(c.config)
	c.PatientAttribution = NewPatientAttributionClient(c.config)
	c.PermissionProfile = NewPermissionProfileClient(c.config)
	c.User = NewUserClient(c.config)
	c.UserSession = NewUserSessionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		Patient:            NewPatientClient(cfg),
		PatientAccessGrant: NewPatientAccessGrantClient(cfg),
		PatientAttribution: NewPatientAttributionClient(cfg),
		PermissionProfile:  NewPermissionProfileClient(cfg),
		User:               NewUserClient(cfg),
		UserSession:        NewUserSessionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		Patient:            NewPatientClient(cfg),
		PatientAccessGrant: NewPatientAccessGrantClient(cfg),
		PatientAttribution: NewPatientAttributionClient(cfg),
		PermissionProfile:  NewPermissionProfileClient(cfg),
		User:               NewUserClient(cfg),
		UserSession:        NewUserSessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Patient.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Patient, c.PatientAccessGrant, c.PatientAttribution, c.PermissionProfile,
		c.User, c.UserSession,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Patient, c.PatientAccessGrant, c.PatientAttribution, c.PermissionProfile,
		c.User, c.UserSession,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *PatientMutation:
		return c.Patient.mutate(ctx, m)
	case *PatientAccessGrantMutation:
		return c.PatientAccessGrant.mutate(ctx, m)
	case *PatientAttributionMutation:
		return c.PatientAttribution.mutate(ctx, m)
	case *PermissionProfileMutation:
		return c.PermissionProfile.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *UserSessionMutation:
		return c.UserSession.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// PatientClient is a client for the Patient schema.
type PatientClient struct {
	config
}

// NewPatientClient returns a client for the Patient from the given config.
func NewPatientClient(c config) *PatientClient {
	return &PatientClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patient.Hooks(f(g(h())))`.
func (c *PatientClient) Use(hooks ...Hook) {
	c.hooks.Patient = append(c.hooks.Patient, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patient.Intercept(f(g(h())))`.
func (c *PatientClient) Intercept(interceptors ...Interceptor) {
	c.inters.Patient = append(c.inters.Patient, interceptors...)
}

// Create returns a builder for creating a Patient entity.
func (c *PatientClient) Create() *PatientCreate {
	mutation := newPatientMutation(c.config, OpCreate)
	return &PatientCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Patient entities.
func (c *PatientClient) CreateBulk(builders ...*PatientCreate) *PatientCreateBulk {
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientClient) MapCreateBulk(slice any, setFunc func(*PatientCreate, int)) *PatientCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientCreateBulk{err: fmt.Errorf("calling to PatientClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Patient.
func (c *PatientClient) Update() *PatientUpdate {
	mutation := newPatientMutation(c.config, OpUpdate)
	return &PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientClient) UpdateOne(_m *Patient) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatient(_m))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientClient) UpdateOneID(id uuid.UUID) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatientID(id))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Patient.
func (c *PatientClient) Delete() *PatientDelete {
	mutation := newPatientMutation(c.config, OpDelete)
	return &PatientDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientClient) DeleteOne(_m *Patient) *PatientDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientClient) DeleteOneID(id uuid.UUID) *PatientDeleteOne {
	builder := c.Delete().Where(patient.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientDeleteOne{builder}
}

// Query returns a query builder for Patient.
func (c *PatientClient) Query() *PatientQuery {
	return &PatientQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatient},
		inters: c.Interceptors(),
	}
}

// Get returns a Patient entity by its id.
func (c *PatientClient) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return c.Query().Where(patient.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientClient) GetX(ctx context.Context, id uuid.UUID) *Patient {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCreator queries the creator edge of a Patient.
func (c *PatientClient) QueryCreator(_m *Patient) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, patient.CreatorTable, patient.CreatorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAccessGrants queries the access_grants edge of a Patient.
func (c *PatientClient) QueryAccessGrants(_m *Patient) *PatientAccessGrantQuery {
	query := (&PatientAccessGrantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(patientaccessgrant.Table, patientaccessgrant.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patient.AccessGrantsTable, patient.AccessGrantsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAttributions queries the attributions edge of a Patient.
func (c *PatientClient) QueryAttributions(_m *Patient) *PatientAttributionQuery {
	query := (&PatientAttributionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(patientattribution.Table, patientattribution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patient.AttributionsTable, patient.AttributionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PatientClient) Hooks() []Hook {
	return c.hooks.Patient
}

// Interceptors returns the client interceptors.
func (c *PatientClient) Interceptors() []Interceptor {
	return c.inters.Patient
}

func (c *PatientClient) mutate(ctx context.Context, m *PatientMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Patient mutation op: %q", m.Op())
	}
}

// PatientAccessGrantClient is a client for the PatientAccessGrant schema.
type PatientAccessGrantClient struct {
	config
}

// NewPatientAccessGrantClient returns a client for the PatientAccessGrant from the given config.
func NewPatientAccessGrantClient(c config) *PatientAccessGrantClient {
	return &PatientAccessGrantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patientaccessgrant.Hooks(f(g(h())))`.
func (c *PatientAccessGrantClient) Use(hooks ...Hook) {
	c.hooks.PatientAccessGrant = append(c.hooks.PatientAccessGrant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patientaccessgrant.Intercept(f(g(h())))`.
func (c *PatientAccessGrantClient) Intercept(interceptors ...Interceptor) {
	c.inters.PatientAccessGrant = append(c.inters.PatientAccessGrant, interceptors...)
}

// Create returns a builder for creating a PatientAccessGrant entity.
func (c *PatientAccessGrantClient) Create() *PatientAccessGrantCreate {
	mutation := newPatientAccessGrantMutation(c.config, OpCreate)
	return &PatientAccessGrantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PatientAccessGrant entities.
func (c *PatientAccessGrantClient) CreateBulk(builders ...*PatientAccessGrantCreate) *PatientAccessGrantCreateBulk {
	return &PatientAccessGrantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientAccessGrantClient) MapCreateBulk(slice any, setFunc func(*PatientAccessGrantCreate, int)) *PatientAccessGrantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientAccessGrantCreateBulk{err: fmt.Errorf("calling to PatientAccessGrantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientAccessGrantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientAccessGrantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PatientAccessGrant.
func (c *PatientAccessGrantClient) Update() *PatientAccessGrantUpdate {
	mutation := newPatientAccessGrantMutation(c.config, OpUpdate)
	return &PatientAccessGrantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientAccessGrantClient) UpdateOne(_m *PatientAccessGrant) *PatientAccessGrantUpdateOne {
	mutation := newPatientAccessGrantMutation(c.config, OpUpdateOne, withPatientAccessGrant(_m))
	return &PatientAccessGrantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientAccessGrantClient) UpdateOneID(id uuid.UUID) *PatientAccessGrantUpdateOne {
	mutation := newPatientAccessGrantMutation(c.config, OpUpdateOne, withPatientAccessGrantID(id))
	return &PatientAccessGrantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PatientAccessGrant.
func (c *PatientAccessGrantClient) Delete() *PatientAccessGrantDelete {
	mutation := newPatientAccessGrantMutation(c.config, OpDelete)
	return &PatientAccessGrantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientAccessGrantClient) DeleteOne(_m *PatientAccessGrant) *PatientAccessGrantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientAccessGrantClient) DeleteOneID(id uuid.UUID) *PatientAccessGrantDeleteOne {
	builder := c.Delete().Where(patientaccessgrant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientAccessGrantDeleteOne{builder}
}

// Query returns a query builder for PatientAccessGrant.
func (c *PatientAccessGrantClient) Query() *PatientAccessGrantQuery {
	return &PatientAccessGrantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatientAccessGrant},
		inters: c.Interceptors(),
	}
}

// Get returns a PatientAccessGrant entity by its id.
func (c *PatientAccessGrantClient) Get(ctx context.Context, id uuid.UUID) (*PatientAccessGrant, error) {
	return c.Query().Where(patientaccessgrant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientAccessGrantClient) GetX(ctx context.Context, id uuid.UUID) *PatientAccessGrant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a PatientAccessGrant.
func (c *PatientAccessGrantClient) QueryUser(_m *PatientAccessGrant) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patientaccessgrant.Table, patientaccessgrant.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, patientaccessgrant.UserTable, patientaccessgrant.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPatient queries the patient edge of a PatientAccessGrant.
func (c *PatientAccessGrantClient) QueryPatient(_m *PatientAccessGrant) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patientaccessgrant.Table, patientaccessgrant.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, patientaccessgrant.PatientTable, patientaccessgrant.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PatientAccessGrantClient) Hooks() []Hook {
	return c.hooks.PatientAccessGrant
}

// Interceptors returns the client interceptors.
func (c *PatientAccessGrantClient) Interceptors() []Interceptor {
	return c.inters.PatientAccessGrant
}

func (c *PatientAccessGrantClient) mutate(ctx context.Context, m *PatientAccessGrantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientAccessGrantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientAccessGrantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientAccessGrantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientAccessGrantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown PatientAccessGrant mutation op: %q", m.Op())
	}
}

// PatientAttributionClient is a client for the PatientAttribution schema.
type PatientAttributionClient struct {
	config
}

// NewPatientAttributionClient returns a client for the PatientAttribution from the given config.
func NewPatientAttributionClient(c config) *PatientAttributionClient {
	return &PatientAttributionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patientattribution.Hooks(f(g(h())))`.
func (c *PatientAttributionClient) Use(hooks ...Hook) {
	c.hooks.PatientAttribution = append(c.hooks.PatientAttribution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patientattribution.Intercept(f(g(h())))`.
func (c *PatientAttributionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PatientAttribution = append(c.inters.PatientAttribution, interceptors...)
}

// Create returns a builder for creating a PatientAttribution entity.
func (c *PatientAttributionClient) Create() *PatientAttributionCreate {
	mutation := newPatientAttributionMutation(c.config, OpCreate)
	return &PatientAttributionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PatientAttribution entities.
func (c *PatientAttributionClient) CreateBulk(builders ...*PatientAttributionCreate) *PatientAttributionCreateBulk {
	return &PatientAttributionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientAttributionClient) MapCreateBulk(slice any, setFunc func(*PatientAttributionCreate, int)) *PatientAttributionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientAttributionCreateBulk{err: fmt.Errorf("calling to PatientAttributionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientAttributionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientAttributionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PatientAttribution.
func (c *PatientAttributionClient) Update() *PatientAttributionUpdate {
	mutation := newPatientAttributionMutation(c.config, OpUpdate)
	return &PatientAttributionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientAttributionClient) UpdateOne(_m *PatientAttribution) *PatientAttributionUpdateOne {
	mutation := newPatientAttributionMutation(c.config, OpUpdateOne, withPatientAttribution(_m))
	return &PatientAttributionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientAttributionClient) UpdateOneID(id uuid.UUID) *PatientAttributionUpdateOne {
	mutation := newPatientAttributionMutation(c.config, OpUpdateOne, withPatientAttributionID(id))
	return &PatientAttributionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PatientAttribution.
func (c *PatientAttributionClient) Delete() *PatientAttributionDelete {
	mutation := newPatientAttributionMutation(c.config, OpDelete)
	return &PatientAttributionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientAttributionClient) DeleteOne(_m *PatientAttribution) *PatientAttributionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientAttributionClient) DeleteOneID(id uuid.UUID) *PatientAttributionDeleteOne {
	builder := c.Delete().Where(patientattribution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientAttributionDeleteOne{builder}
}

// Query returns a query builder for PatientAttribution.
func (c *PatientAttributionClient) Query() *PatientAttributionQuery {
	return &PatientAttributionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatientAttribution},
		inters: c.Interceptors(),
	}
}

// Get returns a PatientAttribution entity by its id.
func (c *PatientAttributionClient) Get(ctx context.Context, id uuid.UUID) (*PatientAttribution, error) {
	return c.Query().Where(patientattribution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientAttributionClient) GetX(ctx context.Context, id uuid.UUID) *PatientAttribution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a PatientAttribution.
func (c *PatientAttributionClient) QueryUser(_m *PatientAttribution) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patientattribution.Table, patientattribution.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, patientattribution.UserTable, patientattribution.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPatient queries the patient edge of a PatientAttribution.
func (c *PatientAttributionClient) QueryPatient(_m *PatientAttribution) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patientattribution.Table, patientattribution.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, patientattribution.PatientTable, patientattribution.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PatientAttributionClient) Hooks() []Hook {
	return c.hooks.PatientAttribution
}

// Interceptors returns the client interceptors.
func (c *PatientAttributionClient) Interceptors() []Interceptor {
	return c.inters.PatientAttribution
}

func (c *PatientAttributionClient) mutate(ctx context.Context, m *PatientAttributionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientAttributionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientAttributionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientAttributionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientAttributionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown PatientAttribution mutation op: %q", m.Op())
	}
}

// PermissionProfileClient is a client for the PermissionProfile schema.
type PermissionProfileClient struct {
	config
}

// NewPermissionProfileClient returns a client for the PermissionProfile from the given config.
func NewPermissionProfileClient(c config) *PermissionProfileClient {
	return &PermissionProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `permissionprofile.Hooks(f(g(h())))`.
func (c *PermissionProfileClient) Use(hooks ...Hook) {
	c.hooks.PermissionProfile = append(c.hooks.PermissionProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `permissionprofile.Intercept(f(g(h())))`.
func (c *PermissionProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.PermissionProfile = append(c.inters.PermissionProfile, interceptors...)
}

// Create returns a builder for creating a PermissionProfile entity.
func (c *PermissionProfileClient) Create() *PermissionProfileCreate {
	mutation := newPermissionProfileMutation(c.config, OpCreate)
	return &PermissionProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PermissionProfile entities.
func (c *PermissionProfileClient) CreateBulk(builders ...*PermissionProfileCreate) *PermissionProfileCreateBulk {
	return &PermissionProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PermissionProfileClient) MapCreateBulk(slice any, setFunc func(*PermissionProfileCreate, int)) *PermissionProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PermissionProfileCreateBulk{err: fmt.Errorf("calling to PermissionProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PermissionProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PermissionProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PermissionProfile.
func (c *PermissionProfileClient) Update() *PermissionProfileUpdate {
	mutation := newPermissionProfileMutation(c.config, OpUpdate)
	return &PermissionProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PermissionProfileClient) UpdateOne(_m *PermissionProfile) *PermissionProfileUpdateOne {
	mutation := newPermissionProfileMutation(c.config, OpUpdateOne, withPermissionProfile(_m))
	return &PermissionProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PermissionProfileClient) UpdateOneID(id uuid.UUID) *PermissionProfileUpdateOne {
	mutation := newPermissionProfileMutation(c.config, OpUpdateOne, withPermissionProfileID(id))
	return &PermissionProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PermissionProfile.
func (c *PermissionProfileClient) Delete() *PermissionProfileDelete {
	mutation := newPermissionProfileMutation(c.config, OpDelete)
	return &PermissionProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PermissionProfileClient) DeleteOne(_m *PermissionProfile) *PermissionProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PermissionProfileClient) DeleteOneID(id uuid.UUID) *PermissionProfileDeleteOne {
	builder := c.Delete().Where(permissionprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PermissionProfileDeleteOne{builder}
}

// Query returns a query builder for PermissionProfile.
func (c *PermissionProfileClient) Query() *PermissionProfileQuery {
	return &PermissionProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePermissionProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a PermissionProfile entity by its id.
func (c *PermissionProfileClient) Get(ctx context.Context, id uuid.UUID) (*PermissionProfile, error) {
	return c.Query().Where(permissionprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PermissionProfileClient) GetX(ctx context.Context, id uuid.UUID) *PermissionProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a PermissionProfile.
func (c *PermissionProfileClient) QueryUser(_m *PermissionProfile) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(permissionprofile.Table, permissionprofile.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, permissionprofile.UserTable, permissionprofile.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PermissionProfileClient) Hooks() []Hook {
	return c.hooks.PermissionProfile
}

// Interceptors returns the client interceptors.
func (c *PermissionProfileClient) Interceptors() []Interceptor {
	return c.inters.PermissionProfile
}

func (c *PermissionProfileClient) mutate(ctx context.Context, m *PermissionProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PermissionProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PermissionProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PermissionProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PermissionProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown PermissionProfile mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPermissionProfile queries the permission_profile edge of a User.
func (c *UserClient) QueryPermissionProfile(_m *User) *PermissionProfileQuery {
	query := (&PermissionProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(permissionprofile.Table, permissionprofile.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, user.PermissionProfileTable, user.PermissionProfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAccessGrants queries the access_grants edge of a User.
func (c *UserClient) QueryAccessGrants(_m *User) *PatientAccessGrantQuery {
	query := (&PatientAccessGrantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(patientaccessgrant.Table, patientaccessgrant.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.AccessGrantsTable, user.AccessGrantsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAttributions queries the attributions edge of a User.
func (c *UserClient) QueryAttributions(_m *User) *PatientAttributionQuery {
	query := (&PatientAttributionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(patientattribution.Table, patientattribution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.AttributionsTable, user.AttributionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCreatedPatients queries the created_patients edge of a User.
func (c *UserClient) QueryCreatedPatients(_m *User) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.CreatedPatientsTable, user.CreatedPatientsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown User mutation op: %q", m.Op())
	}
}

// UserSessionClient is a client for the UserSession schema.
type UserSessionClient struct {
	config
}

// NewUserSessionClient returns a client for the UserSession from the given config.
func NewUserSessionClient(c config) *UserSessionClient {
	return &UserSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usersession.Hooks(f(g(h())))`.
func (c *UserSessionClient) Use(hooks ...Hook) {
	c.hooks.UserSession = append(c.hooks.UserSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usersession.Intercept(f(g(h())))`.
func (c *UserSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserSession = append(c.inters.UserSession, interceptors...)
}

// Create returns a builder for creating a UserSession entity.
func (c *UserSessionClient) Create() *UserSessionCreate {
	mutation := newUserSessionMutation(c.config, OpCreate)
	return &UserSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserSession entities.
func (c *UserSessionClient) CreateBulk(builders ...*UserSessionCreate) *UserSessionCreateBulk {
	return &UserSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserSessionClient) MapCreateBulk(slice any, setFunc func(*UserSessionCreate, int)) *UserSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserSessionCreateBulk{err: fmt.Errorf("calling to UserSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserSession.
func (c *UserSessionClient) Update() *UserSessionUpdate {
	mutation := newUserSessionMutation(c.config, OpUpdate)
	return &UserSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserSessionClient) UpdateOne(_m *UserSession) *UserSessionUpdateOne {
	mutation := newUserSessionMutation(c.config, OpUpdateOne, withUserSession(_m))
	return &UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserSessionClient) UpdateOneID(id uuid.UUID) *UserSessionUpdateOne {
	mutation := newUserSessionMutation(c.config, OpUpdateOne, withUserSessionID(id))
	return &UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserSession.
func (c *UserSessionClient) Delete() *UserSessionDelete {
	mutation := newUserSessionMutation(c.config, OpDelete)
	return &UserSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserSessionClient) DeleteOne(_m *UserSession) *UserSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserSessionClient) DeleteOneID(id uuid.UUID) *UserSessionDeleteOne {
	builder := c.Delete().Where(usersession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserSessionDeleteOne{builder}
}

// Query returns a query builder for UserSession.
func (c *UserSessionClient) Query() *UserSessionQuery {
	return &UserSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserSession},
		inters: c.Interceptors(),
	}
}

// Get returns a UserSession entity by its id.
func (c *UserSessionClient) Get(ctx context.Context, id uuid.UUID) (*UserSession, error) {
	return c.Query().Where(usersession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserSessionClient) GetX(ctx context.Context, id uuid.UUID) *UserSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a UserSession.
func (c *UserSessionClient) QueryUser(_m *UserSession) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usersession.Table, usersession.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, usersession.UserTable, usersession.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserSessionClient) Hooks() []Hook {
	return c.hooks.UserSession
}

// Interceptors returns the client interceptors.
func (c *UserSessionClient) Interceptors() []Interceptor {
	return c.inters.UserSession
}

func (c *UserSessionClient) mutate(ctx context.Context, m *UserSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown UserSession mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Patient, PatientAccessGrant, PatientAttribution, PermissionProfile, User,
		UserSession []ent.Hook
	}
	inters struct {
		Patient, PatientAccessGrant, PatientAttribution, PermissionProfile, User,
		UserSession []ent.Interceptor
	}
)

// ExecContext allows calling the underlying ExecContext method of the driver if it is supported by it.
// See, database/sql#DB.ExecContext for more information.
func (c *config) ExecContext(ctx context.Context, query string, args ...any) (stdsql.Result, error) {
	ex, ok := c.driver.(interface {
		ExecContext(context.Context, string, ...any) (stdsql.Result, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.ExecContext is not supported")
	}
	return ex.ExecContext(ctx, query, args...)
}

// QueryContext allows calling the underlying QueryContext method of the driver if it is supported by it.
// See, database/sql#DB.QueryContext for more information.
func (c *config) QueryContext(ctx context.Context, query string, args ...any) (*stdsql.Rows, error) {
	q, ok := c.driver.(interface {
		QueryContext(context.Context, string, ...any) (*stdsql.Rows, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.QueryContext is not supported")
	}
	return q.QueryContext(ctx, query, args...)
}
