package client

type Client interface {
	Template() TemplateClient
	Campaign() CampaignClient
	Customization() CustomizationClient
	Rendering() RenderingClient
}

type client struct {
	transport *Transport
}

func NewClient(baseUrl string, opts ...TransportOptions) Client {
	return &client{
		transport: NewTransport(baseUrl, opts...),
	}
}

func (c *client) Template() TemplateClient {
	return NewTemplateClient(c.transport)
}

func (c *client) Campaign() CampaignClient {
	return NewCampaignClient(c.transport)
}

func (c *client) Customization() CustomizationClient {
	return NewCustomizationClient(c.transport)
}

func (c *client) Rendering() RenderingClient {
	return NewRenderingClient(c.transport)
}
