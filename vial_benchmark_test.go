package vial

import "testing"

func BenchmarkNormalInstantiation(b *testing.B) {
	for i := 0; i < b.N; i++ {
		config := &Config{
			SomeURL: "123",
		}
		services := [4]*HandlerService{}
		for i := 0; i < 4; i++ {
			subServices := [4]*SubHandlerService{}
			for j := 0; j < 4; j++ {
				subServices[j] = &SubHandlerService{Config: config}
			}
			services[i] = &HandlerService{
				Sub0: subServices[0],
				Sub1: subServices[1],
				Sub2: subServices[2],
				Sub3: subServices[3],
			}
		}
		_ = &Handler{
			Service0: services[0],
			Service1: services[1],
			Service2: services[2],
			Service3: services[3],
		}
	}
}

func BenchmarkRegisteredFactories(b *testing.B) {
	c := New()

	Instance(c, "123")
	Singleton(c, NewConfig)
	Register(c, NewHandler)
	Register(c, NewHandlerService)
	Register(c, NewSubHandlerService)

	for i := 0; i < b.N; i++ {
		_, _ = Resolve[*Handler](c)
	}
}

func BenchmarkAutowiring(b *testing.B) {
	c := New()

	// Only the config is registered, the rest of the graph is built from the
	// struct fields alone.
	Instance(c, &Config{SomeURL: "123"})

	for i := 0; i < b.N; i++ {
		_, _ = Resolve[*Handler](c)
	}
}

type Handler struct {
	Service0 *HandlerService
	Service1 *HandlerService
	Service2 *HandlerService
	Service3 *HandlerService
}

func NewHandler(c *Container) (*Handler, error) {
	service0, err := Resolve[*HandlerService](c)
	if err != nil {
		return nil, err
	}
	service1, err := Resolve[*HandlerService](c)
	if err != nil {
		return nil, err
	}
	service2, err := Resolve[*HandlerService](c)
	if err != nil {
		return nil, err
	}
	service3, err := Resolve[*HandlerService](c)
	if err != nil {
		return nil, err
	}
	return &Handler{
		Service0: service0,
		Service1: service1,
		Service2: service2,
		Service3: service3,
	}, nil
}

type HandlerService struct {
	Sub0 *SubHandlerService
	Sub1 *SubHandlerService
	Sub2 *SubHandlerService
	Sub3 *SubHandlerService
}

func NewHandlerService(c *Container) (*HandlerService, error) {
	sub0, err := Resolve[*SubHandlerService](c)
	if err != nil {
		return nil, err
	}
	sub1, err := Resolve[*SubHandlerService](c)
	if err != nil {
		return nil, err
	}
	sub2, err := Resolve[*SubHandlerService](c)
	if err != nil {
		return nil, err
	}
	sub3, err := Resolve[*SubHandlerService](c)
	if err != nil {
		return nil, err
	}
	return &HandlerService{
		Sub0: sub0,
		Sub1: sub1,
		Sub2: sub2,
		Sub3: sub3,
	}, nil
}

type SubHandlerService struct {
	Config *Config
}

func NewSubHandlerService(c *Container) (*SubHandlerService, error) {
	config, err := Resolve[*Config](c)
	if err != nil {
		return nil, err
	}
	return &SubHandlerService{
		Config: config,
	}, nil
}

type Config struct {
	SomeURL string
}

func NewConfig(c *Container) (*Config, error) {
	url, err := Resolve[string](c)
	if err != nil {
		return nil, err
	}
	return &Config{
		SomeURL: url,
	}, nil
}
