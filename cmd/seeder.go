package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/frahmantamala/lead-tracker/internal/employee"
	"github.com/frahmantamala/lead-tracker/internal/lead"
	"github.com/frahmantamala/lead-tracker/internal/recordstore"
	"github.com/frahmantamala/lead-tracker/internal/session"
	"github.com/frahmantamala/lead-tracker/pkg/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the storage with sample data",
	Long:  `Seed the storage with sample employees and leads for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		cfg, err := loadConfig(configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		lg := logger.LoggerWrapper()

		be, err := openBackend(ctx, cfg.Storage, lg)
		if err != nil {
			log.Fatalf("failed to open storage: %v", err)
		}
		defer be.Close()

		if clearData {
			keys := []string{
				recordstore.KeyEmployees,
				recordstore.KeyLeads,
				recordstore.KeyEmployeeIDSeq,
				session.KeyIsAuthenticated,
				session.KeyCurrentEmployee,
			}
			for _, key := range keys {
				if err := be.Store.Remove(ctx, key); err != nil {
					log.Fatalf("failed to clear %s: %v", key, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		// leads are spread over the last three days at different hours
		stamp := time.Now().Add(-72 * time.Hour).Truncate(time.Hour)
		store := newCommandRecordStore(be, lg, recordstore.WithClock(func() time.Time { return stamp }))

		existing, err := store.ListEmployees(ctx)
		if err != nil {
			log.Fatalf("failed to list employees: %v", err)
		}
		if len(existing) > 0 {
			fmt.Printf("%d employees already present; skipping seed (use --clear to reseed)\n", len(existing))
			return
		}

		for i, dto := range sampleEmployees() {
			emp, err := store.AddEmployee(ctx, dto)
			if err != nil {
				log.Fatalf("failed to insert employee %s: %v", dto.Email, err)
			}
			fmt.Println("Seeded employee:", emp.ID, emp.FullName())

			for j, leadDTO := range sampleLeads(emp) {
				stamp = stamp.Add(time.Duration(5*i+j+1) * time.Hour)
				if _, err := store.AddLead(ctx, emp.ID, leadDTO); err != nil {
					log.Fatalf("failed to insert lead for %s: %v", emp.Email, err)
				}
			}
		}

		fmt.Println("Seeding complete")
	},
}

func sampleEmployees() []employee.CreateEmployeeDTO {
	return []employee.CreateEmployeeDTO{
		{FirstName: "Jane", LastName: "Doe", Email: "jane@ips.local", Phone: "0811000001", Department: string(employee.DepartmentIPS)},
		{FirstName: "John", LastName: "Roe", Email: "john@gmec.local", Phone: "0811000002", Department: string(employee.DepartmentGMEC)},
		{FirstName: "Sari", LastName: "Putri", Email: "sari@tascon.local", Phone: "0811000003", Department: string(employee.DepartmentTASCON)},
		{FirstName: "Budi", LastName: "Santoso", Email: "budi@fps.local", Phone: "0811000004", Department: string(employee.DepartmentFPS)},
	}
}

func sampleLeads(emp *employee.Employee) []lead.LeadDTO {
	companies := []string{"Acme", "Globex", "Initech"}
	leads := make([]lead.LeadDTO, 0, len(companies))
	for i, company := range companies {
		leads = append(leads, lead.LeadDTO{
			Name:     fmt.Sprintf("Contact %d of %s", i+1, emp.FirstName),
			Email:    fmt.Sprintf("contact%d@%s.example", i+1, company),
			Phone:    fmt.Sprintf("0812%07d", emp.ID*100+int64(i)),
			Status:   "new",
			JobTitle: "Procurement Lead",
			Company:  company,
			City:     "Jakarta",
			Message:  fmt.Sprintf("Met at the %s booth", emp.Department),
		})
	}
	return leads
}
