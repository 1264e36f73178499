package directory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/pkg/types"
)

func TestDirectory_Lookups(t *testing.T) {
	d := New()
	d.PutClient(domain.Client{ID: "1", FirstName: "María", LastName: "García"})
	d.PutProfessional(domain.Professional{ID: "1", Name: "Isabella Martínez"})
	d.PutService(domain.Service{ID: "3", Name: "Ondas", Duration: "45 min"})

	client, ok := d.LookupClient("1")
	require.True(t, ok)
	assert.Equal(t, "María García", client.DisplayName())

	_, ok = d.LookupClient("99")
	assert.False(t, ok)

	pro, ok := d.LookupProfessional("1")
	require.True(t, ok)
	assert.Equal(t, "Isabella Martínez", pro.Name)

	svc, ok := d.LookupService("3")
	require.True(t, ok)
	assert.Equal(t, "Ondas", svc.Name)

	_, ok = d.LookupService("1")
	assert.False(t, ok)
}

func TestDirectory_PutKeepsOrder(t *testing.T) {
	d := New()
	d.PutClient(domain.Client{ID: "2", FirstName: "Carlos"})
	d.PutClient(domain.Client{ID: "1", FirstName: "María"})
	d.PutClient(domain.Client{ID: "2", FirstName: "Carlos", LastName: "Rodríguez"})

	clients := d.Clients()
	require.Len(t, clients, 2)
	assert.Equal(t, domain.ClientID("2"), clients[0].ID)
	assert.Equal(t, "Rodríguez", clients[0].LastName)
	assert.Equal(t, domain.ClientID("1"), clients[1].ID)
}

func TestLoadSeed_ProjectFile(t *testing.T) {
	seed, err := LoadSeed("../../seed.toml")
	require.NoError(t, err)

	d := New()
	require.NoError(t, seed.Apply(d))

	assert.Len(t, d.Clients(), 2)
	assert.Len(t, d.Professionals(), 2)
	assert.Len(t, d.Services(), 4)

	svc, ok := d.LookupService("1")
	require.True(t, ok)
	assert.Equal(t, "45 min", svc.Duration)
	assert.Equal(t, domain.DepositFixed, svc.Deposit.Type)

	today := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	appointments, err := seed.BuildAppointments(today)
	require.NoError(t, err)
	require.Len(t, appointments, 3)

	assert.Equal(t, domain.StatusConfirmed, appointments[0].Status)
	assert.Equal(t, domain.StatusPending, appointments[1].Status)
	assert.Equal(t, domain.StatusCancelled, appointments[2].Status)
	assert.Equal(t, types.TimeString("14:30"), appointments[1].StartTime)
	assert.True(t, appointments[0].OccursOn(today))
}

func TestSeed_Apply_RejectsBadDuration(t *testing.T) {
	seed, err := ParseSeed(`
[[services]]
id = "9"
name = "Corte"
duration = "un rato"
`)
	require.NoError(t, err)

	err = seed.Apply(New())
	assert.ErrorIs(t, err, ErrInvalidSeed)
}

func TestSeed_BuildAppointments_UnknownStatus(t *testing.T) {
	seed, err := ParseSeed(`
[[appointments]]
id = "1"
start_time = "10:00"
status = "done"
`)
	require.NoError(t, err)

	_, err = seed.BuildAppointments(time.Now())
	assert.ErrorIs(t, err, ErrInvalidSeed)
}
