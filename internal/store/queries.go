package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Dealership queries.
const (
	dealershipColumns = `id, name, location, province, address, postal_code, phone, created_at`

	queryCreateDealership = `
		INSERT INTO dealerships (name, location, province, address, postal_code, phone)
		VALUES (@name, @location, @province, @address, @postal_code, @phone)
		RETURNING id, created_at`

	queryGetDealership = `
		SELECT ` + dealershipColumns + `
		FROM dealerships
		WHERE id = $1`

	queryListDealerships = `
		SELECT ` + dealershipColumns + `
		FROM dealerships
		ORDER BY name ASC, id ASC`

	queryUpdateDealership = `
		UPDATE dealerships SET
			name = @name,
			location = @location,
			province = @province,
			address = @address,
			postal_code = @postal_code,
			phone = @phone
		WHERE id = @id`

	queryDeleteDealership = `DELETE FROM dealerships WHERE id = $1`

	queryDealershipNames = `
		SELECT id, name
		FROM dealerships
		WHERE id::text = ANY($1)`
)

// Vehicle queries.
const (
	vehicleColumns = `id, dealership_id, COALESCE(vin, ''), COALESCE(stock_number, ''), condition,
	make, model, trim, year, color, price, kilometers,
	transmission, fuel_type, body_type, COALESCE(drivetrain, ''),
	engine_cylinders, engine_displacement, features,
	listing_link, carfax_link, COALESCE(carfax_status, ''), notes, status, created_at`

	queryCreateVehicle = `
		INSERT INTO vehicles (
			dealership_id, vin, stock_number, condition,
			make, model, trim, year, color, price, kilometers,
			transmission, fuel_type, body_type, drivetrain,
			engine_cylinders, engine_displacement, features,
			listing_link, carfax_link, carfax_status, notes, status
		) VALUES (
			@dealership_id, NULLIF(@vin, ''), NULLIF(@stock_number, ''), @condition,
			@make, @model, @trim, @year, @color, @price, @kilometers,
			@transmission, @fuel_type, @body_type, NULLIF(@drivetrain, ''),
			@engine_cylinders, @engine_displacement, @features,
			@listing_link, @carfax_link, NULLIF(@carfax_status, ''), @notes, @status
		)
		RETURNING id, created_at`

	queryGetVehicle = `
		SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE id = $1`

	queryGetVehicleByVIN = `
		SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE upper(vin) = upper($1)`

	queryGetVehicleByStockNumber = `
		SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE stock_number = $1
		ORDER BY created_at DESC
		LIMIT 1`

	queryUpdateVehicle = `
		UPDATE vehicles SET
			dealership_id = @dealership_id,
			vin = NULLIF(@vin, ''),
			stock_number = NULLIF(@stock_number, ''),
			condition = @condition,
			make = @make,
			model = @model,
			trim = @trim,
			year = @year,
			color = @color,
			price = @price,
			kilometers = @kilometers,
			transmission = @transmission,
			fuel_type = @fuel_type,
			body_type = @body_type,
			drivetrain = NULLIF(@drivetrain, ''),
			engine_cylinders = @engine_cylinders,
			engine_displacement = @engine_displacement,
			features = @features,
			listing_link = @listing_link,
			carfax_link = @carfax_link,
			carfax_status = NULLIF(@carfax_status, ''),
			notes = @notes,
			status = @status
		WHERE id = @id`

	queryDeleteVehicle = `DELETE FROM vehicles WHERE id = $1`

	queryListComparables = `
		SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE lower(make) = lower($1) AND lower(model) = lower($2)
		ORDER BY created_at DESC, id ASC`

	queryListInventory = `
		SELECT ` + vehicleColumns + `
		FROM vehicles
		ORDER BY created_at DESC, id ASC`
)
