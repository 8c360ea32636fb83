package domain

// CampaignStatus representa o estado atual de uma campanha
type CampaignStatus string

const (
	StatusActive    CampaignStatus = "Active"
	StatusPaused    CampaignStatus = "Paused"
	StatusCompleted CampaignStatus = "Completed"
)

// CampaignStatuses retorna os estados conhecidos na ordem de geração
func CampaignStatuses() []CampaignStatus {
	return []CampaignStatus{StatusActive, StatusPaused, StatusCompleted}
}

// Channel representa o canal de veiculação de uma campanha
type Channel string

const (
	ChannelGoogleAds Channel = "Google Ads"
	ChannelFacebook  Channel = "Facebook"
	ChannelInstagram Channel = "Instagram"
	ChannelLinkedIn  Channel = "LinkedIn"
	ChannelEmail     Channel = "Email"
)

// Channels retorna os cinco canais conhecidos
func Channels() []Channel {
	return []Channel{ChannelGoogleAds, ChannelFacebook, ChannelInstagram, ChannelLinkedIn, ChannelEmail}
}

// Campaign representa uma campanha gerada para a tabela do dashboard.
// Imutável depois de gerada; o ID é estável sob filtro, ordenação e paginação.
type Campaign struct {
	ID               int            `json:"id"`
	Name             string         `json:"name"`
	Status           CampaignStatus `json:"status"`
	Channel          Channel        `json:"channel"`
	Budget           float64        `json:"budget"`
	Spend            float64        `json:"spend"`
	Conversions      int            `json:"conversions"`
	RevenueGenerated float64        `json:"revenue_generated"`
	ROI              float64        `json:"roi"`
}
