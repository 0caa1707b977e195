package sales

import (
	"context"
	"time"

	"github.com/misikss/nova-salud-api/internal/application/dto"
	"github.com/misikss/nova-salud-api/internal/domain"
	"github.com/misikss/nova-salud-api/internal/domain/repository"
)

// DefaultTopProducts productos a devolver cuando no se indica límite.
const DefaultTopProducts = 10

// ReportUseCase genera reportes de ventas sobre el repositorio de lectura.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo}
}

// Daily reporte del día indicado (YYYY-MM-DD, vacío = hoy): totales del día y
// desglose por vendedor.
func (uc *ReportUseCase) Daily(ctx context.Context, fecha string) (*dto.DailyReportDTO, error) {
	dia := time.Now()
	if fecha != "" {
		parsed, err := time.Parse("2006-01-02", fecha)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		dia = parsed
	}
	desde := time.Date(dia.Year(), dia.Month(), dia.Day(), 0, 0, 0, 0, dia.Location())
	hasta := desde.Add(24*time.Hour - time.Nanosecond)

	totals, err := uc.reportRepo.TotalsBetween(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	porUsuario, err := uc.reportRepo.SalesByUser(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}

	out := &dto.DailyReportDTO{
		Fecha:       desde.Format("2006-01-02"),
		TotalVentas: totals.Cantidad,
		MontoTotal:  totals.Monto,
		PorUsuario:  make([]dto.UserSalesDTO, 0, len(porUsuario)),
	}
	for _, row := range porUsuario {
		out.PorUsuario = append(out.PorUsuario, dto.UserSalesDTO{
			Usuario:  row.Nombre + " " + row.Apellido,
			Cantidad: row.Cantidad,
			Monto:    row.Monto,
		})
	}
	return out, nil
}

// Monthly reporte del mes indicado (1..12; cero = mes actual): totales del mes
// y desglose por día.
func (uc *ReportUseCase) Monthly(ctx context.Context, mes, anio int) (*dto.MonthlyReportDTO, error) {
	now := time.Now()
	if mes == 0 {
		mes = int(now.Month())
	}
	if anio == 0 {
		anio = now.Year()
	}
	if mes < 1 || mes > 12 {
		return nil, domain.ErrInvalidInput
	}
	desde := time.Date(anio, time.Month(mes), 1, 0, 0, 0, 0, now.Location())
	hasta := desde.AddDate(0, 1, 0).Add(-time.Nanosecond)

	totals, err := uc.reportRepo.TotalsBetween(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	porDia, err := uc.reportRepo.SalesByDay(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}

	out := &dto.MonthlyReportDTO{
		Mes:         mes,
		Anio:        anio,
		TotalVentas: totals.Cantidad,
		MontoTotal:  totals.Monto,
		PorDia:      make([]dto.DaySalesDTO, 0, len(porDia)),
	}
	for _, row := range porDia {
		out.PorDia = append(out.PorDia, dto.DaySalesDTO{
			Dia:      row.Dia,
			Cantidad: row.Cantidad,
			Monto:    row.Monto,
		})
	}
	return out, nil
}

// TopProducts productos más vendidos en el rango opcional (YYYY-MM-DD).
// limite <= 0 usa DefaultTopProducts.
func (uc *ReportUseCase) TopProducts(ctx context.Context, desde, hasta string, limite int) ([]dto.TopProductDTO, error) {
	if limite <= 0 {
		limite = DefaultTopProducts
	}
	var desdePtr, hastaPtr *time.Time
	if desde != "" {
		parsed, err := time.Parse("2006-01-02", desde)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		desdePtr = &parsed
	}
	if hasta != "" {
		parsed, err := time.Parse("2006-01-02", hasta)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		fin := parsed.Add(24*time.Hour - time.Nanosecond)
		hastaPtr = &fin
	}

	rows, err := uc.reportRepo.TopProducts(ctx, desdePtr, hastaPtr, limite)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopProductDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.TopProductDTO{
			ProductoID:   row.ProductoID,
			Codigo:       row.Codigo,
			Nombre:       row.Nombre,
			TotalVendido: row.TotalVendido,
			MontoTotal:   row.MontoTotal,
		})
	}
	return out, nil
}
