package models

type FillLevel string

const (
	FillHigh   FillLevel = "high"
	FillMedium FillLevel = "medium"
	FillLow    FillLevel = "low"
)

type TemperatureLabel string

const (
	TemperatureHot  TemperatureLabel = "hot"
	TemperatureWarm TemperatureLabel = "warm"
	TemperatureCool TemperatureLabel = "cool"
	TemperatureCold TemperatureLabel = "cold"
)

// Bottle holds the physical container state. Volume stays within [0, Capacity].
type Bottle struct {
	volume      int
	capacity    int
	temperature float64
}

func NewBottle(capacity, volume int, temperature float64) *Bottle {
	if capacity <= 0 {
		capacity = 1
	}
	return &Bottle{
		volume:      clamp(volume, 0, capacity),
		capacity:    capacity,
		temperature: temperature,
	}
}

func (b *Bottle) Volume() int   { return b.volume }
func (b *Bottle) Capacity() int { return b.capacity }

func (b *Bottle) CanConsume(volume int) bool {
	return volume > 0 && b.volume >= volume
}

// Drain removes volume from the bottle. The caller checks CanConsume first.
func (b *Bottle) Drain(volume int) {
	b.volume = clamp(b.volume-volume, 0, b.capacity)
}

func (b *Bottle) Refill() {
	b.volume = b.capacity
}

func (b *Bottle) SetVolume(volume int) {
	b.volume = clamp(volume, 0, b.capacity)
}

func (b *Bottle) FillPercent() int {
	return roundHalfUp(float64(b.volume) / float64(b.capacity) * 100)
}

func (b *Bottle) FillLevel() FillLevel {
	p := b.FillPercent()
	switch {
	case p >= 60:
		return FillHigh
	case p >= 20:
		return FillMedium
	default:
		return FillLow
	}
}

func (b *Bottle) Temperature() float64 { return b.temperature }

func (b *Bottle) SetTemperature(celsius float64) {
	b.temperature = celsius
}

func (b *Bottle) TemperatureLabel() TemperatureLabel {
	switch t := b.temperature; {
	case t >= 35:
		return TemperatureHot
	case t >= 20:
		return TemperatureWarm
	case t >= 10:
		return TemperatureCool
	default:
		return TemperatureCold
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
