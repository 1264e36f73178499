// Package fixtures содержит демонстрационный справочник салона для тестов
package fixtures

import (
	"github.com/m04kA/SMC-SalonCalendar/internal/directory"
	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

// NewDemoDirectory возвращает справочник с теми же данными, что и seed.toml
func NewDemoDirectory() *directory.Directory {
	d := directory.New()

	d.PutClient(domain.Client{ID: "1", FirstName: "María", LastName: "García", Phone: "555 123 4567", CountryCode: "+52", MembershipType: "VIP", Status: domain.ClientStatusActive})
	d.PutClient(domain.Client{ID: "2", FirstName: "Carlos", LastName: "Rodríguez", Phone: "555 987 6543", CountryCode: "+52", MembershipType: "regular", Status: domain.ClientStatusActive})

	d.PutProfessional(domain.Professional{ID: "1", Name: "Isabella Martínez", Position: "Maquillista", CalendarColor: "ring-purple-500", Status: domain.ProfessionalStatusActive})
	d.PutProfessional(domain.Professional{ID: "2", Name: "Daniel Rodríguez", Position: "Peinador", CalendarColor: "ring-blue-500", Status: domain.ProfessionalStatusActive})

	d.PutService(domain.Service{ID: "1", Name: "Express", Duration: "45 min", Price: 800, Category: "Maquillaje", Status: "active",
		Deposit: domain.CatalogDeposit{Required: true, Type: domain.DepositFixed, Amount: 200}})
	d.PutService(domain.Service{ID: "2", Name: "Social", Duration: "1hr", Price: 1000, Category: "Maquillaje", Status: "inactive",
		Deposit: domain.CatalogDeposit{Required: true, Type: domain.DepositPercentage, Amount: 10}})
	d.PutService(domain.Service{ID: "3", Name: "Ondas", Duration: "45 min", Price: 800, Category: "Peinado", Status: "active",
		Deposit: domain.CatalogDeposit{Required: true, Type: domain.DepositFixed, Amount: 200}})
	d.PutService(domain.Service{ID: "4", Name: "Semirecogido", Duration: "1hr", Price: 1000, Category: "Peinado", Status: "inactive",
		Deposit: domain.CatalogDeposit{Required: true, Type: domain.DepositPercentage, Amount: 10}})

	return d
}
