package vial

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

type IService interface {
	GetValue() int
}
type Service struct {
	value string
}

func (s *Service) GetValue() int {
	return 12
}

func NewService(*Container) (IService, error) {
	return &Service{
		value: uuid.NewString(),
	}, nil
}

type CustomError struct{}

func (c *CustomError) Error() string {
	return "custom error"
}

var customError = &CustomError{}

func NewServiceError(*Container) (IService, error) {
	return nil, customError
}

type OtherService struct {
	value string
}

func (s *OtherService) GetValue() int {
	return 13
}

func NewOtherService(*Container) (IService, error) {
	return &OtherService{
		value: uuid.NewString(),
	}, nil
}

type IServiceOne interface {
	GetValueOne() int
}
type ServiceOne struct {
	value string
}

func NewServiceOne(*Container) (IServiceOne, error) {
	return &ServiceOne{
		value: uuid.NewString(),
	}, nil
}

func (s *ServiceOne) GetValueOne() int {
	return 1
}

type IServiceTwo interface {
	GetValueTwo() int
}
type ServiceTwo struct {
	value string
}

func NewServiceTwo(*Container) (IServiceTwo, error) {
	return &ServiceTwo{
		value: uuid.NewString(),
	}, nil
}

func (s *ServiceTwo) GetValueTwo() int {
	return 2
}

type IServiceThree interface {
	GetValueThree() int
}
type ServiceThree struct {
	value      string
	serviceOne IServiceOne
	serviceTwo IServiceTwo
}

func NewServiceThree(c *Container) (IServiceThree, error) {
	serviceOne, err := Resolve[IServiceOne](c)
	if err != nil {
		return nil, err
	}
	serviceTwo, err := Resolve[IServiceTwo](c)
	if err != nil {
		return nil, err
	}
	return &ServiceThree{
		value:      uuid.NewString(),
		serviceOne: serviceOne,
		serviceTwo: serviceTwo,
	}, nil
}

func (s *ServiceThree) GetValueThree() int {
	return s.serviceOne.GetValueOne() + s.serviceTwo.GetValueTwo()
}

type IServiceFive interface {
	GetValueFive() int
}
type ServiceFive struct {
	value        string
	serviceTwo   IServiceTwo
	serviceThree IServiceThree
}

func NewServiceFive(c *Container) (IServiceFive, error) {
	serviceTwo, err := Resolve[IServiceTwo](c)
	if err != nil {
		return nil, err
	}
	serviceThree, err := Resolve[IServiceThree](c)
	if err != nil {
		return nil, err
	}
	return &ServiceFive{
		value:        uuid.NewString(),
		serviceTwo:   serviceTwo,
		serviceThree: serviceThree,
	}, nil
}

func (s *ServiceFive) GetValueFive() int {
	return s.serviceTwo.GetValueTwo() + s.serviceThree.GetValueThree()
}

type SeeminglyHarmlessService struct {
	circularDependency CircularDependency
}

func NewSeeminglyHarmlessService(c *Container) (IService, error) {
	circularDependency, err := Resolve[CircularDependency](c)
	if err != nil {
		return nil, err
	}
	return &SeeminglyHarmlessService{
		circularDependency,
	}, nil
}

func (s *SeeminglyHarmlessService) GetValue() int {
	return 13
}

type CircularDependency struct {
	service IService
}

func NewCircularDependency(c *Container) (CircularDependency, error) {
	service, err := Resolve[IService](c)
	if err != nil {
		return CircularDependency{}, err
	}
	return CircularDependency{
		service,
	}, nil
}

// The collaborator types below exist to exercise autowiring. Their exported
// fields are what the container fills in; the unexported ones stay out of
// its reach.

type Logger interface {
	Info(message string)
	Warning(message string)
}

type recordingLogger struct {
	mu       sync.Mutex
	infos    []string
	warnings []string
}

func (l *recordingLogger) Info(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, message)
}

func (l *recordingLogger) Warning(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, message)
}

func (l *recordingLogger) Infos() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string{}, l.infos...)
}

func (l *recordingLogger) Warnings() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string{}, l.warnings...)
}

type Row map[string]any

type Connection interface {
	Execute(query string) ([]Row, error)
}

type fakeConnection struct {
	mu      sync.Mutex
	queries []string
	rows    []Row
	err     error
}

func (f *fakeConnection) Execute(query string) ([]Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeConnection) Queries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.queries...)
}

type QueryBuilder struct {
	Conn Connection
	Log  Logger

	columns string
	table   string
}

func (qb *QueryBuilder) Select(columns string) *QueryBuilder {
	qb.columns = columns
	return qb
}

func (qb *QueryBuilder) From(table string) *QueryBuilder {
	qb.table = table
	return qb
}

func (qb *QueryBuilder) Get() ([]Row, error) {
	query := fmt.Sprintf("select %s from %s", qb.columns, qb.table)
	qb.Log.Info(fmt.Sprintf("running query: %s", query))
	rows, err := qb.Conn.Execute(query)
	if err != nil {
		qb.Log.Warning(fmt.Sprintf("query failed: %s: %v", query, err))
		return nil, err
	}
	return rows, nil
}

// Dashboard nests an autowired dependency one level deeper.
type Dashboard struct {
	Builder *QueryBuilder
	Log     Logger
}

// Report mixes a resolvable dependency with a scalar that only an explicit
// parameter can provide.
type Report struct {
	Title string
	Conn  Connection
}

type Tracer interface {
	Trace(message string)
}

// Telemetry tolerates running without a Tracer registration.
type Telemetry struct {
	Log    Logger
	Tracer Tracer `inject:"optional"`
}

// Workbench keeps Scratch away from injection entirely.
type Workbench struct {
	Log     Logger
	Scratch []string `inject:"-"`
}

type NodeA struct {
	B *NodeB
}

type NodeB struct {
	A *NodeA
}
